package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coffeeshop-api/internal/auth"
	"coffeeshop-api/internal/user"
)

// registerHandler creates an account and hands back a bearer token.
//
// @Summary  Register a new customer
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.RegisterRequest true "signup payload"
// @Success  201 {object} user.AuthResponse
// @Failure  422 {object} map[string][]string
// @Router   /auth/register [post]
func registerHandler(users user.Repository, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if msgs := req.Validate(); len(msgs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": msgs})
			return
		}
		hash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash error"})
			return
		}
		u := &user.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
			PasswordHash: hash,
			IsAdmin:      false,
			RewardPoints: 0,
			MemberSince:  time.Now().UTC(),
		}
		if err := users.Create(c.Request.Context(), u); err != nil {
			if err == user.ErrAlreadyExist {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Email has already been taken"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create error"})
			return
		}
		token, err := auth.GenerateToken(u.ID, secret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusCreated, user.AuthResponse{Token: token, User: *u})
	}
}

// loginHandler checks credentials and issues a bearer token.
//
// @Summary  Log in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.AuthResponse
// @Failure  401 {object} map[string]string
// @Router   /auth/login [post]
func loginHandler(users user.Repository, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !user.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		token, err := auth.GenerateToken(u.ID, secret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, user.AuthResponse{Token: token, User: *u})
	}
}
