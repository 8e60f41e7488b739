// services/menu_service.go
package services

import (
	"fmt"

	"github.com/EswarAdityaReddy/Foodie/entity"
	"github.com/EswarAdityaReddy/Foodie/repository"
)

type MenuService struct {
	items []entity.MenuItem
	byID  map[string]entity.MenuItem
}

func NewMenuService(repo *repository.MenuRepository) (*MenuService, error) {
	items, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	byID := make(map[string]entity.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &MenuService{items: items, byID: byID}, nil
}

// Items returns the full menu catalog in catalog order.
func (s *MenuService) Items() []entity.MenuItem { return s.items }

func (s *MenuService) Get(id string) (entity.MenuItem, error) {
	it, ok := s.byID[id]
	if !ok {
		return entity.MenuItem{}, ErrMenuItemNotFound
	}
	return it, nil
}
