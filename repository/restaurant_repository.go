// repository/restaurant_repository.go
package repository

import (
	"github.com/EswarAdityaReddy/Foodie/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindAll returns the catalog in display order.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("position ASC").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("position ASC").Find(&cats).Error
	return cats, err
}
