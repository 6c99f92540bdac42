package handlers

import (
	"errors"
	"net/http"

	"yoldas/internal/models"
	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListMeals answers the browsing screen: meals grouped into sections.
func (h *MenuHandler) ListMeals(c *gin.Context) {
	restaurantID, ok := uintParam(c, "restaurantId")
	if !ok {
		return
	}

	sections, err := h.menuService.ListMeals(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *MenuHandler) AddMeal(c *gin.Context) {
	restaurantID, ok := uintParam(c, "restaurantId")
	if !ok {
		return
	}

	var req struct {
		Section string  `json:"section"`
		Name    string  `json:"name" binding:"required"`
		Price   float64 `json:"price" binding:"required"`
		Photo   string  `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meal := &models.Meal{
		Section: req.Section,
		Name:    req.Name,
		Price:   req.Price,
		Photo:   req.Photo,
	}
	if err := h.menuService.AddMeal(restaurantID, meal); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": meal.ID})
}

func (h *MenuHandler) UpdateMeal(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	var patch services.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meal, err := h.menuService.UpdateMeal(mealID, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MenuHandler) DeleteMeal(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	if err := h.menuService.DeleteMeal(mealID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.Status(http.StatusNoContent)
}
