package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop-api/internal/httpx"
	"coffeeshop-api/internal/order"
	"coffeeshop-api/internal/user"
)

// @Summary  Current profile
// @Tags     users
// @Security BearerAuth
// @Produce  json
// @Success  200 {object} user.User
// @Router   /users [get]
func currentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, httpx.CurrentUser(c))
	}
}

// @Summary  Update own profile
// @Tags     users
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body body user.UpdateProfileRequest true "fields to change"
// @Success  200 {object} user.User
// @Router   /users [patch]
func updateProfileHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		var req user.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		upd := *u
		upd.Name = req.Name
		upd.Phone = req.Phone
		upd.Address = req.Address
		upd.Email = "" // self-service update never changes email
		if err := users.Update(c.Request.Context(), &upd); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update error"})
			return
		}
		out, err := users.GetByID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refetch error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// addRewardPointsHandler grants points to the caller's own balance. Negative
// deltas are rejected outright rather than clamped; the stored balance can
// never go below zero that way.
//
// @Summary  Add reward points to own balance
// @Tags     users
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body body user.GrantPointsRequest true "points to grant"
// @Success  200 {object} map[string]int
// @Failure  422 {object} map[string][]string
// @Router   /users/add_reward_points [patch]
func addRewardPointsHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := httpx.CurrentUser(c)
		grantPoints(c, users, u.ID)
	}
}

func grantPoints(c *gin.Context, users user.Repository, userID string) {
	var req user.GrantPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Points < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Points must be greater than or equal to 0"}})
		return
	}
	balance, err := users.AddRewardPoints(c.Request.Context(), userID, req.Points)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reward_points": balance})
}

// @Summary  List users (admin)
// @Tags     admin
// @Security BearerAuth
// @Produce  json
// @Success  200 {array} user.User
// @Router   /admin/users [get]
func listUsersHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := users.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if out == nil {
			out = []user.User{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// adminGetUserHandler returns one user with their order history.
//
// @Summary  Get one user with orders (admin)
// @Tags     admin
// @Security BearerAuth
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {object} map[string]any
// @Failure  404 {object} map[string]string
// @Router   /admin/users/{id} [get]
func adminGetUserHandler(users user.Repository, orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		history, err := orders.List(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
			return
		}
		if history == nil {
			history = []order.WithItems{}
		}
		c.JSON(http.StatusOK, gin.H{"user": u, "orders": history})
	}
}

// @Summary  Update a user (admin)
// @Tags     admin
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id path string true "user id"
// @Param    body body user.AdminUpdateUserRequest true "fields to change"
// @Success  200 {object} user.User
// @Failure  404 {object} map[string]string
// @Router   /admin/users/{id} [patch]
func adminUpdateUserHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.AdminUpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		u, err := users.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		upd := *u
		upd.Name = req.Name
		upd.Email = req.Email
		upd.Phone = req.Phone
		upd.Address = req.Address
		if req.IsAdmin != nil {
			upd.IsAdmin = *req.IsAdmin
		}
		if err := users.Update(c.Request.Context(), &upd); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update error"})
			return
		}
		out, err := users.GetByID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "refetch error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Add reward points to any user (admin)
// @Tags     admin
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id path string true "user id"
// @Param    body body user.GrantPointsRequest true "points to grant"
// @Success  200 {object} map[string]int
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string][]string
// @Router   /admin/users/{id}/add_reward_points [patch]
func adminAddRewardPointsHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		grantPoints(c, users, c.Param("id"))
	}
}
