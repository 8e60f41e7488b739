// services/restaurant_service.go
package services

import (
	"fmt"

	"github.com/EswarAdityaReddy/Foodie/entity"
	"github.com/EswarAdityaReddy/Foodie/repository"
)

// CatalogService holds the read-only catalog loaded at startup and runs the
// discovery filter and menu sectioning over it.
type CatalogService struct {
	restaurants []entity.Restaurant
	categories  []entity.Category
	index       CategoryIndex
	menu        *MenuService
}

func NewCatalogService(repo *repository.RestaurantRepository, menu *MenuService) (*CatalogService, error) {
	rests, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	cats, err := repo.FindCategories()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return &CatalogService{
		restaurants: rests,
		categories:  cats,
		index:       NewCategoryIndex(cats),
		menu:        menu,
	}, nil
}

func (s *CatalogService) Restaurants() []entity.Restaurant { return s.restaurants }

func (s *CatalogService) Categories() []entity.Category { return s.categories }

func (s *CatalogService) Restaurant(id string) (entity.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return entity.Restaurant{}, ErrRestaurantNotFound
}

// Filter runs the discovery filter over the whole catalog.
func (s *CatalogService) Filter(categoryID, query string) []entity.Restaurant {
	return FilterRestaurants(s.restaurants, s.index, categoryID, query)
}

// CategoryName resolves a category id; used for the "Best <name>" heading.
func (s *CatalogService) CategoryName(id string) (string, bool) {
	return s.index.CategoryName(id)
}

// MenuSections returns the restaurant's menu grouped for display.
func (s *CatalogService) MenuSections(restaurantID string) ([]entity.MenuSection, error) {
	if _, err := s.Restaurant(restaurantID); err != nil {
		return nil, err
	}
	return BuildMenuSections(restaurantID, s.menu.Items()), nil
}
