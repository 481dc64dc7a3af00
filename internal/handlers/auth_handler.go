package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/auth"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	tokens      TokenIssuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string        `json:"token"`
	User  auth.Identity `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// Me returns the verified caller
// @Summary     Current user
// @Description Get the identity resolved from the bearer token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} auth.Identity "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, err := middleware.CurrentIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(status, AuthResponse{Token: token, User: auth.IdentityOf(user)})
}
