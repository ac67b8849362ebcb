package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/jobfeed/auth"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/storage"
)

// UserStore persists accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	LinkGoogleID(ctx context.Context, id, googleID string) error
}

// GoogleVerifier checks Google ID tokens
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      UserStore
	jwtService *auth.JWTService
	google     GoogleVerifier
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users UserStore, jwtService *auth.JWTService, google GoogleVerifier) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		google:     google,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	log := logger.Component("auth")

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			badRequest(c, err)
			return
		}
		log.Error().Err(err).Msg("Failed to hash password")
		internalError(c, "Failed to process registration")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     strings.TrimSpace(req.Name),
		Password: hash,
		Provider: models.ProviderEmail,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "Registration failed",
				Code:    http.StatusConflict,
				Details: err.Error(),
			})
			return
		}
		log.Error().Err(err).Msg("Failed to create user")
		internalError(c, "Failed to process registration")
		return
	}

	log.Info().Str("user", user.ID).Msg("User registered")
	h.respondWithToken(c, http.StatusCreated, user, "Registration successful")
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Component("auth").Error().Err(err).Msg("Failed to load user")
			internalError(c, "Failed to process login")
			return
		}
		unauthorized(c, "Invalid email or password")
		return
	}

	if user.Provider == models.ProviderGoogle && user.Password == "" {
		unauthorized(c, "This account uses Google Sign-In. Please login with Google.")
		return
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		unauthorized(c, "Invalid email or password")
		return
	}

	h.respondWithToken(c, http.StatusOK, user, "Login successful")
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.Component("auth")

	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	identity, err := h.google.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to verify Google token")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid Google token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	user, err := h.findOrCreateGoogleUser(ctx, identity)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve Google user")
		internalError(c, "Failed to sign in with Google")
		return
	}

	h.respondWithToken(c, http.StatusOK, user, "Login successful")
}

func (h *AuthHandler) findOrCreateGoogleUser(ctx context.Context, identity *auth.GoogleIdentity) (*models.User, error) {
	user, err := h.users.GetUserByGoogleID(ctx, identity.GoogleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}

	// An email account signing in with Google for the first time gets linked.
	user, err = h.users.GetUser(ctx, identity.Email)
	switch {
	case err == nil:
		if err := h.users.LinkGoogleID(ctx, user.ID, identity.GoogleID); err != nil {
			return nil, err
		}
		user.GoogleID = identity.GoogleID
		return user, nil
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, err
	}

	user = &models.User{
		Email:    identity.Email,
		Name:     identity.Name,
		Provider: models.ProviderGoogle,
		GoogleID: identity.GoogleID,
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	logger.Component("auth").Info().Str("user", user.ID).Msg("New Google user created")
	return user, nil
}

// RefreshToken issues a fresh token for a still valid one
// @Summary Refresh token
// @Description Exchange a valid token for one with a new expiry
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AuthResponse "Token refreshed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := auth.BearerToken(c.GetHeader("Authorization"))
	if err == nil {
		token, err = h.jwtService.RefreshToken(token)
	}
	if err != nil {
		unauthorized(c, "Invalid or expired token")
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: token, Message: "Token refreshed"})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		logger.Component("auth").Error().Err(err).Msg("Failed to generate token")
		internalError(c, "Failed to generate token")
		return
	}

	c.JSON(status, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: message,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid request body",
		Code:    http.StatusBadRequest,
		Details: err.Error(),
	})
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: msg,
		Code:  http.StatusUnauthorized,
	})
}

func internalError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: msg,
		Code:  http.StatusInternalServerError,
	})
}
