package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coffeeshop-api/docs"
	"coffeeshop-api/internal/analytics"
	"coffeeshop-api/internal/httpx"
	"coffeeshop-api/internal/menu"
	"coffeeshop-api/internal/order"
	"coffeeshop-api/internal/user"
)

type deps struct {
	users    user.Repository
	catalog  menu.Repository
	orders   order.Repository
	stats    analytics.Repository
	secret   string
	tokenTTL time.Duration
}

func buildRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	api.POST("/auth/register", registerHandler(d.users, d.secret, d.tokenTTL))
	api.POST("/auth/login", loginHandler(d.users, d.secret, d.tokenTTL))

	// public catalog reads
	api.GET("/menu_items", listMenuItemsHandler(d.catalog))
	api.GET("/menu_items/popular", popularMenuItemsHandler(d.catalog))
	api.GET("/menu_items/by_category", menuItemsByCategoryHandler(d.catalog))
	api.GET("/menu_items/:id", getMenuItemHandler(d.catalog))

	authed := api.Group("", httpx.Auth(d.users, d.secret))

	authed.GET("/orders", listOrdersHandler(d.orders))
	authed.POST("/orders", createOrderHandler(d.orders, d.catalog))
	authed.GET("/orders/:id", getOrderHandler(d.orders))
	authed.PATCH("/orders/:id", updateOrderStatusHandler(d.orders))
	authed.DELETE("/orders/:id", deleteOrderHandler(d.orders))

	authed.GET("/users", currentUserHandler())
	authed.PATCH("/users", updateProfileHandler(d.users))
	authed.PATCH("/users/add_reward_points", addRewardPointsHandler(d.users))

	admin := authed.Group("/admin", httpx.RequireAdmin())

	admin.GET("/menu_items", listMenuItemsHandler(d.catalog))
	admin.POST("/menu_items", createMenuItemHandler(d.catalog))
	admin.PATCH("/menu_items/:id", updateMenuItemHandler(d.catalog))
	admin.DELETE("/menu_items/:id", deleteMenuItemHandler(d.catalog))

	admin.GET("/orders", listOrdersHandler(d.orders))
	admin.GET("/orders/analytics", analyticsHandler(d.stats))
	admin.GET("/orders/:id", getOrderHandler(d.orders))
	admin.PATCH("/orders/:id", updateOrderStatusHandler(d.orders))

	admin.GET("/users", listUsersHandler(d.users))
	admin.GET("/users/:id", adminGetUserHandler(d.users, d.orders))
	admin.PATCH("/users/:id", adminUpdateUserHandler(d.users))
	admin.PATCH("/users/:id/add_reward_points", adminAddRewardPointsHandler(d.users))

	return r
}
