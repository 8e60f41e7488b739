package repository

import (
	"github.com/EswarAdityaReddy/Foodie/entity"

	"gorm.io/gorm"
)

// OrderRepository reads the seeded order history.
type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ListHistory returns seeded orders, newest first.
func (r *OrderRepository) ListHistory(limit int) ([]entity.Order, error) {
	var rows []entity.Order
	q := r.DB.Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}
