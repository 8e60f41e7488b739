// controllers/restaurant_controller.go
package controllers

import (
	"strings"

	"github.com/EswarAdityaReddy/Foodie/entity"
	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Catalog *services.CatalogService
}

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: s}
}

// ====== Response DTO ======
type RestaurantResponse struct {
	entity.Restaurant
	PriceLabel string `json:"priceLabel"`
}

type MenuResponse struct {
	Restaurant    RestaurantResponse   `json:"restaurant"`
	Sections      []entity.MenuSection `json:"sections"`
	ActiveSection string               `json:"activeSection"`
}

// GET /categories
func (ctl *RestaurantController) Categories(c *gin.Context) {
	resp.OK(c, gin.H{"items": ctl.Catalog.Categories()})
}

// GET /restaurants?category=&q=
func (ctl *RestaurantController) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" {
		if _, ok := ctl.Catalog.CategoryName(category); !ok {
			writeError(c, services.ErrCategoryNotFound)
			return
		}
	}
	rests := ctl.Catalog.Filter(category, c.Query("q"))
	resp.OK(c, gin.H{"items": mapRestaurants(rests)})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Get(c *gin.Context) {
	r, err := ctl.Catalog.Restaurant(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, mapToRestaurantResponse(r))
}

// GET /restaurants/:id/menu
func (ctl *RestaurantController) Menu(c *gin.Context) {
	r, err := ctl.Catalog.Restaurant(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	sections, err := ctl.Catalog.MenuSections(r.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := MenuResponse{Restaurant: mapToRestaurantResponse(r), Sections: sections}
	if len(sections) > 0 {
		out.ActiveSection = sections[0].ID
	}
	resp.OK(c, out)
}

// ====== Helper ======
func mapToRestaurantResponse(r entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{Restaurant: r, PriceLabel: strings.Repeat("₹", r.PriceRange)}
}

func mapRestaurants(rests []entity.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(rests))
	for _, r := range rests {
		out = append(out, mapToRestaurantResponse(r))
	}
	return out
}
