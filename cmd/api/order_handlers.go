package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coffeeshop-api/internal/httpx"
	"coffeeshop-api/internal/menu"
	"coffeeshop-api/internal/order"
)

// createOrderHandler prices the cart, then persists the order, its lines and
// the reward-point grant atomically. points_earned == floor(total).
//
// @Summary  Create an order from a cart
// @Tags     orders
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "cart"
// @Success  201 {object} order.CreateOrderResponse
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string][]string
// @Router   /orders [post]
func createOrderHandler(orders order.Repository, catalog order.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		items, total, err := order.PriceCart(c.Request.Context(), catalog, req.Items)
		if err != nil {
			var verr *order.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Messages})
			case errors.Is(err, menu.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "pricing error"})
			}
			return
		}

		o := &order.Order{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			Status:    order.StatusPending,
			Total:     total.StringFixed(2),
			OrderDate: time.Now().UTC(),
		}
		for i := range items {
			items[i].ID = uuid.NewString()
			items[i].OrderID = o.ID
		}
		points := order.PointsEarned(total)

		if err := orders.Create(c.Request.Context(), o, items, points); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create error"})
			return
		}

		c.JSON(http.StatusCreated, order.CreateOrderResponse{
			Order: order.WithItems{
				Order: *o,
				Items: items,
			},
			PointsEarned: points,
		})
	}
}

// @Summary  List orders (own, or all when admin)
// @Tags     orders
// @Security BearerAuth
// @Produce  json
// @Success  200 {array} order.WithItems
// @Router   /orders [get]
func listOrdersHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		scope := u.ID
		if u.IsAdmin {
			scope = ""
		}
		out, err := orders.List(c.Request.Context(), scope)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if out == nil {
			out = []order.WithItems{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get one order
// @Tags     orders
// @Security BearerAuth
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.WithItems
// @Failure  404 {object} map[string]string
// @Router   /orders/{id} [get]
func getOrderHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		scope := u.ID
		if u.IsAdmin {
			scope = ""
		}
		o, err := orders.GetByID(c.Request.Context(), c.Param("id"), scope)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler is admin-only and only touches the status field.
// The transition must be legal for the order's current state.
//
// @Summary  Update order status (admin)
// @Tags     orders
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    body body order.UpdateStatusRequest true "new status"
// @Success  200 {object} order.WithItems
// @Failure  403 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string][]string
// @Router   /orders/{id} [patch]
func updateOrderStatusHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		if !u.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if !order.ValidStatus(req.Status) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Status is not included in the list"}})
			return
		}

		o, err := orders.GetByID(c.Request.Context(), c.Param("id"), "")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if !order.CanTransition(o.Status, req.Status) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Status cannot change from " + o.Status + " to " + req.Status}})
			return
		}
		if err := orders.UpdateStatus(c.Request.Context(), o.ID, o.Status, req.Status); err != nil {
			if err == order.ErrStatusConflict {
				c.JSON(http.StatusConflict, gin.H{"error": "order was updated concurrently"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update error"})
			return
		}
		o.Status = req.Status
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Delete an order and its lines
// @Tags     orders
// @Security BearerAuth
// @Param    id path string true "order id"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /orders/{id} [delete]
func deleteOrderHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		scope := u.ID
		if u.IsAdmin {
			scope = ""
		}
		ok, err := orders.Delete(c.Request.Context(), c.Param("id"), scope)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete error"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
