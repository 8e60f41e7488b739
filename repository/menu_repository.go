// repository/menu_repository.go
package repository

import (
	"github.com/EswarAdityaReddy/Foodie/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll returns every menu item in catalog order.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("position ASC").Find(&items).Error
	return items, err
}

