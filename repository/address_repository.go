package repository

import (
	"foodiehub/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) GetForUser(userID, id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetDefault returns the user's default address, or
// gorm.ErrRecordNotFound when none is marked.
func (r *AddressRepository) GetDefault(userID uint) (*entity.Address, error) {
	var a entity.Address
	err := r.DB.Where("user_id = ? AND is_default = ?", userID, true).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create stores the address. When it is flagged default, previous
// defaults are cleared in the same transaction.
func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := clearDefaults(tx, &entity.Address{}, a.UserID); err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

func (r *AddressRepository) Update(a *entity.Address) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Address{}).Error
}

// SetDefault makes the target the user's single default: clear every
// flag, then set the target, all inside one transaction so a failure
// in between never leaves zero or multiple defaults visible.
func (r *AddressRepository) SetDefault(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var a entity.Address
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
			return err
		}
		if err := clearDefaults(tx, &entity.Address{}, userID); err != nil {
			return err
		}
		return tx.Model(&entity.Address{}).Where("id = ?", id).
			Update("is_default", true).Error
	})
}

func clearDefaults(tx *gorm.DB, model any, userID uint) error {
	return tx.Model(model).Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
