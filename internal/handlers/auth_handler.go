package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nomix/internal/errors"
	"nomix/internal/middleware"
	"nomix/internal/services"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	userService services.UserServicer
	tokens      *middleware.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"max=50"`
	LastName  string `json:"lastName" binding:"max=50"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
	Password  string `json:"password" binding:"required,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Token   string `json:"token"`
}

// LoginResponse is returned after a successful login. User carries the
// account's first name for the greeting.
type LoginResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
	UserID  uint   `json:"user_id"`
	Token   string `json:"token"`
}

// Signup handles account creation
// @Summary     Create an account
// @Description Register a new user and return a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Signup data"
// @Success     201 {object} SignupResponse
// @Failure     400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
		Token:   token,
	})
}

// Login handles user login
// @Summary     Log in
// @Description Authenticate with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} LoginResponse
// @Failure     400 {object} ErrorResponse "Invalid input or credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    user.FirstName,
		UserID:  user.ID,
		Token:   token,
	})
}
