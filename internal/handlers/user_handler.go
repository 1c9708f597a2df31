package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

const refreshTokenCookie = "refreshToken"

// UserHandler handles registration, login, and the refresh-token cookie flow
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// setRefreshCookie installs the httpOnly refresh-token cookie. A negative
// maxAge clears it.
func setRefreshCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(refreshTokenCookie, token, maxAge, "/", "", config.Get().CookieSecure, true)
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email and password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} MessageResponse "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.userService.CreateUser(req.Name, req.Email, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User Registered Successfully",
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user; returns an access token and sets the refresh-token cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} MessageResponse "User authenticated"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	accessToken, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	refreshToken, err := middleware.GenerateRefreshToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	if err := h.userService.StoreRefreshTokenHash(user.ID, middleware.HashToken(refreshToken)); err != nil {
		respondWithError(c, err)
		return
	}

	setRefreshCookie(c, refreshToken, middleware.RefreshTokenMaxAge)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "User LoggedIn Successfully",
		"accessToken": accessToken,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// RefreshToken rotates the access token off the refresh-token cookie
// @Summary     Refresh access token
// @Description Issue a new access token from the refresh-token cookie
// @Tags        users
// @Produce     json
// @Success     200 {object} MessageResponse "New access token issued"
// @Failure     401 {object} ErrorResponse "Missing refresh token"
// @Failure     403 {object} ErrorResponse "Invalid refresh token"
// @Router      /users/refreshToken [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	claims, err := middleware.ValidateRefreshToken(token)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidRefreshToken)
		return
	}

	storedHash, err := h.userService.GetRefreshTokenHash(claims.UserID)
	if err != nil || storedHash == "" || storedHash != middleware.HashToken(token) {
		respondWithError(c, apperrors.ErrInvalidRefreshToken)
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidRefreshToken)
		return
	}

	accessToken, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": accessToken,
	})
}

// Logout clears the stored refresh token and the cookie
// @Summary     Logout user
// @Description Invalidate the refresh token and clear its cookie
// @Tags        users
// @Success     204 "Logged out"
// @Router      /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(refreshTokenCookie); err == nil {
		if err := h.userService.ClearRefreshTokenHash(middleware.HashToken(token)); err != nil {
			respondWithError(c, err)
			return
		}
	}

	setRefreshCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}
