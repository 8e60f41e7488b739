package controllers

import (
	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

type DiscoveryController struct{ Svc *services.DiscoveryService }

func NewDiscoveryController(s *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Svc: s}
}

type discoveryResponse struct {
	SelectedCategory string               `json:"selectedCategory"`
	SearchQuery      string               `json:"searchQuery"`
	Heading          string               `json:"heading"`
	Restaurants      []RestaurantResponse `json:"restaurants"`
}

func toDiscoveryResponse(v services.DiscoveryView) discoveryResponse {
	return discoveryResponse{
		SelectedCategory: v.SelectedCategory,
		SearchQuery:      v.SearchQuery,
		Heading:          v.Heading,
		Restaurants:      mapRestaurants(v.Restaurants),
	}
}

// GET /discovery
func (h *DiscoveryController) View(c *gin.Context) {
	v, err := h.Svc.View(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, toDiscoveryResponse(v))
}

// POST /discovery/categories/:id
func (h *DiscoveryController) ToggleCategory(c *gin.Context) {
	v, err := h.Svc.ToggleCategory(utils.CurrentSessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, toDiscoveryResponse(v))
}

// PUT /discovery/search
func (h *DiscoveryController) Search(c *gin.Context) {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := h.Svc.SetQuery(utils.CurrentSessionID(c), body.Query)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, toDiscoveryResponse(v))
}

// POST /favorites/:id
func (h *DiscoveryController) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	on, err := h.Svc.ToggleFavorite(utils.CurrentSessionID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurantId": id, "isFavorite": on})
}

// GET /favorites
func (h *DiscoveryController) Favorites(c *gin.Context) {
	rests, err := h.Svc.Favorites(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": mapRestaurants(rests)})
}
