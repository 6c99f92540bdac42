package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"yoldas/internal/models"
	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService services.RestaurantService
}

func NewRestaurantHandler(restaurantService services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListApproved returns every restaurant a customer may browse.
func (h *RestaurantHandler) ListApproved(c *gin.Context) {
	restaurants, err := h.restaurantService.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := uintParam(c, "ownerId")
	if !ok {
		return
	}

	restaurants, err := h.restaurantService.ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	ownerID, ok := uintParam(c, "ownerId")
	if !ok {
		return
	}

	var req struct {
		Name         string  `json:"name" binding:"required"`
		Location     string  `json:"location"`
		Cuisine      string  `json:"cuisine"`
		Photo        string  `json:"photo"`
		Description  string  `json:"description"`
		Phone        string  `json:"phone"`
		Opens        string  `json:"opens"`
		Closes       string  `json:"closes"`
		DailySpecial string  `json:"daily_special"`
		Rating       float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	restaurant := &models.Restaurant{
		OwnerID:      ownerID,
		Name:         req.Name,
		Location:     req.Location,
		Cuisine:      req.Cuisine,
		Photo:        req.Photo,
		Description:  req.Description,
		Phone:        req.Phone,
		Opens:        req.Opens,
		Closes:       req.Closes,
		DailySpecial: req.DailySpecial,
		Rating:       req.Rating,
	}
	if err := h.restaurantService.Create(restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) Approve(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	req := struct {
		Approved *bool `json:"approved"`
	}{}
	_ = c.ShouldBindJSON(&req)
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	restaurant, err := h.restaurantService.Approve(id, approved)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) UpdatePhoto(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Photo string `json:"photo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo"})
		return
	}

	restaurant, err := h.restaurantService.UpdatePhoto(id, req.Photo)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// uintParam parses a numeric path parameter, answering 400 itself when the
// value is malformed.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
