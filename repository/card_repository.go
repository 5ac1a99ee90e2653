package repository

import (
	"foodiehub/entity"

	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) ListForUser(userID uint) ([]entity.PaymentCard, error) {
	var out []entity.PaymentCard
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *CardRepository) GetForUser(userID, id uint) (*entity.PaymentCard, error) {
	var c entity.PaymentCard
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepository) GetDefault(userID uint) (*entity.PaymentCard, error) {
	var c entity.PaymentCard
	err := r.DB.Where("user_id = ? AND is_default = ?", userID, true).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepository) Create(c *entity.PaymentCard) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefaults(tx, &entity.PaymentCard{}, c.UserID); err != nil {
				return err
			}
		}
		return tx.Create(c).Error
	})
}

func (r *CardRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.PaymentCard{}).Error
}

// SetDefault mirrors AddressRepository.SetDefault: clear-then-set in
// one transaction, ownership checked first.
func (r *CardRepository) SetDefault(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var c entity.PaymentCard
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
			return err
		}
		if err := clearDefaults(tx, &entity.PaymentCard{}, userID); err != nil {
			return err
		}
		return tx.Model(&entity.PaymentCard{}).Where("id = ?", id).
			Update("is_default", true).Error
	})
}
