package repository

import (
	"foodiehub/entity"

	"gorm.io/gorm"
)

// CatalogRepository is the read-only view of sellable items. Cart and
// checkout only ever consult it; catalog writes happen through
// seeding.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GetItemByID loads an item with its option sets resolved.
func (r *CatalogRepository) GetItemByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.
		Preload("Toppings").
		Preload("SideOptions").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Toppings").
		Preload("SideOptions").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CatalogRepository) ListByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Toppings").
		Preload("SideOptions").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CatalogRepository) Categories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}
