package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coffeeshop-api/internal/menu"
)

// @Summary  List menu items
// @Tags     menu
// @Produce  json
// @Success  200 {array} menu.MenuItem
// @Router   /menu_items [get]
func listMenuItemsHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.List(c.Request.Context(), menu.Query{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  List popular menu items
// @Tags     menu
// @Produce  json
// @Success  200 {array} menu.MenuItem
// @Router   /menu_items/popular [get]
func popularMenuItemsHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.List(c.Request.Context(), menu.Query{Popular: true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  List menu items in a category
// @Tags     menu
// @Produce  json
// @Param    category query string true "category name"
// @Success  200 {array} menu.MenuItem
// @Router   /menu_items/by_category [get]
func menuItemsByCategoryHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if !menu.ValidCategory(category) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Category is not included in the list"}})
			return
		}
		items, err := catalog.List(c.Request.Context(), menu.Query{Category: category})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  Get one menu item
// @Tags     menu
// @Produce  json
// @Param    id path string true "menu item id"
// @Success  200 {object} menu.MenuItem
// @Failure  404 {object} map[string]string
// @Router   /menu_items/{id} [get]
func getMenuItemHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary  Create a menu item (admin)
// @Tags     admin
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body body menu.CreateMenuItemRequest true "menu item"
// @Success  201 {object} menu.MenuItem
// @Failure  422 {object} map[string][]string
// @Router   /admin/menu_items [post]
func createMenuItemHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.CreateMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if msgs := req.Validate(); len(msgs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": msgs})
			return
		}
		m := &menu.MenuItem{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			Image:          req.Image,
			Category:       req.Category,
			Sizes:          req.Sizes,
			Customizations: req.Customizations,
			Popular:        req.Popular,
		}
		if m.Sizes == nil {
			m.Sizes = []menu.Size{}
		}
		if m.Customizations == nil {
			m.Customizations = []string{}
		}
		if err := catalog.Create(c.Request.Context(), m); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create error"})
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// @Summary  Update a menu item (admin)
// @Tags     admin
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id path string true "menu item id"
// @Param    body body menu.UpdateMenuItemRequest true "fields to change"
// @Success  200 {object} menu.MenuItem
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string][]string
// @Router   /admin/menu_items/{id} [patch]
func updateMenuItemHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.UpdateMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if msgs := req.Validate(); len(msgs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": msgs})
			return
		}
		m, err := catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		m.Name = req.Name
		m.Description = req.Description
		m.Image = req.Image
		m.Category = req.Category
		if req.Sizes != nil {
			m.Sizes = req.Sizes
		}
		if req.Customizations != nil {
			m.Customizations = req.Customizations
		}
		if req.Popular != nil {
			m.Popular = *req.Popular
		}
		updatePrice := req.Price != ""
		if updatePrice {
			m.Price = req.Price
		}
		if err := catalog.Update(c.Request.Context(), m, updatePrice); err != nil {
			if err == menu.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update error"})
			return
		}
		out, err := catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refetch error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a menu item (admin)
// @Tags     admin
// @Security BearerAuth
// @Param    id path string true "menu item id"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /admin/menu_items/{id} [delete]
func deleteMenuItemHandler(catalog menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := catalog.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete error"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
