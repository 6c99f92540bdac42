package handlers

import (
	"errors"
	"net/http"

	"yoldas/internal/models"
	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

type ModifierHandler struct {
	modifierService services.ModifierService
}

func NewModifierHandler(modifierService services.ModifierService) *ModifierHandler {
	return &ModifierHandler{modifierService: modifierService}
}

// GroupsForMeal is the catalog contract: groups attached to the meal, each
// with its options inline, in id order.
func (h *ModifierHandler) GroupsForMeal(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	groups, err := h.modifierService.GroupsForMeal(mealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *ModifierHandler) ListGroups(c *gin.Context) {
	restaurantID, ok := uintParam(c, "restaurantId")
	if !ok {
		return
	}

	groups, err := h.modifierService.ListGroups(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *ModifierHandler) CreateGroup(c *gin.Context) {
	restaurantID, ok := uintParam(c, "restaurantId")
	if !ok {
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		Required  bool   `json:"required"`
		MinSelect int    `json:"min_select"`
		MaxSelect int    `json:"max_select"`
		Scope     string `json:"scope"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	group := &models.ModifierGroup{
		Name:      req.Name,
		Required:  req.Required,
		MinSelect: req.MinSelect,
		MaxSelect: req.MaxSelect,
		Scope:     req.Scope,
	}
	if err := h.modifierService.CreateGroup(restaurantID, group); err != nil {
		if errors.Is(err, services.ErrBadGroupBounds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": group.ID})
}

func (h *ModifierHandler) UpdateGroup(c *gin.Context) {
	groupID, ok := uintParam(c, "groupId")
	if !ok {
		return
	}

	var patch services.GroupPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.modifierService.UpdateGroup(groupID, patch); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		case errors.Is(err, services.ErrBadGroupBounds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ModifierHandler) DeleteGroup(c *gin.Context) {
	groupID, ok := uintParam(c, "groupId")
	if !ok {
		return
	}

	if err := h.modifierService.DeleteGroup(groupID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ModifierHandler) AttachGroup(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "groupId")
	if !ok {
		return
	}

	if err := h.modifierService.AttachGroup(mealID, groupID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ModifierHandler) DetachGroup(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}
	groupID, ok := uintParam(c, "groupId")
	if !ok {
		return
	}

	if err := h.modifierService.DetachGroup(mealID, groupID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ModifierHandler) CreateOption(c *gin.Context) {
	groupID, ok := uintParam(c, "groupId")
	if !ok {
		return
	}

	var req struct {
		Name       string  `json:"name" binding:"required"`
		PriceDelta float64 `json:"price_delta"`
		IsDefault  bool    `json:"is_default"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	option := &models.ModifierOption{
		Name:       req.Name,
		PriceDelta: req.PriceDelta,
		IsDefault:  req.IsDefault,
	}
	if err := h.modifierService.CreateOption(groupID, option); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": option.ID})
}

func (h *ModifierHandler) UpdateOption(c *gin.Context) {
	optionID, ok := uintParam(c, "optionId")
	if !ok {
		return
	}

	var patch services.OptionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.modifierService.UpdateOption(optionID, patch); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ModifierHandler) DeleteOption(c *gin.Context) {
	optionID, ok := uintParam(c, "optionId")
	if !ok {
		return
	}

	if err := h.modifierService.DeleteOption(optionID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.Status(http.StatusNoContent)
}
