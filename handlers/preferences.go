package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/jobfeed/auth"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
	"github.com/myjobmatch/jobfeed/storage"
)

// PreferenceStore reads and writes saved preferences
type PreferenceStore interface {
	SavedPreferences
	SavePreferences(ctx context.Context, userID string, prefs models.UserPreferences) error
}

// PreferencesHandler manages a user's saved search preferences
type PreferencesHandler struct {
	store PreferenceStore
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// GetPreferences returns the caller's saved preferences
// @Summary Get saved preferences
// @Tags Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PreferencesResponse "Saved preferences"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /api/preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		unauthorized(c, "Unauthorized")
		return
	}

	prefs, err := h.store.GetPreferences(c.Request.Context(), claims.UserID)
	if err != nil {
		h.storeFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PreferencesResponse{Preferences: prefs})
}

// UpdatePreferences replaces the caller's saved preferences
// @Summary Save preferences
// @Description Saved preferences fill blank parameters of /api/jobs/recommend
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UserPreferences true "Preferences"
// @Success 200 {object} models.PreferencesResponse "Preferences saved"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		unauthorized(c, "Unauthorized")
		return
	}

	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.store.SavePreferences(c.Request.Context(), claims.UserID, prefs); err != nil {
		h.storeFailed(c, err)
		return
	}

	logger.Component("preferences").Info().Str("user", claims.UserID).Msg("Preferences saved")
	c.JSON(http.StatusOK, models.PreferencesResponse{
		Preferences: prefs,
		Message:     "Preferences saved",
	})
}

func (h *PreferencesHandler) storeFailed(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	logger.Component("preferences").Error().Err(err).Msg("Preference store failed")
	internalError(c, "Failed to access preferences")
}
