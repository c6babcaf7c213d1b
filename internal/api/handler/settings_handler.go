package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/core/ports"
)

const defaultTheme = "light"

// SettingsHandler reads and writes the persisted theme preference.
type SettingsHandler struct {
	store ports.StateStore
}

func NewSettingsHandler(store ports.StateStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetTheme returns the persisted theme, falling back to light when unset.
//
// @Summary      Get theme preference
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  themeResponse
// @Router       /v1/settings/theme [get]
func (h *SettingsHandler) GetTheme(c echo.Context) error {
	mode, ok, err := h.store.LoadTheme(c.Request().Context())
	if err != nil {
		return err
	}
	if !ok {
		mode = defaultTheme
	}
	return c.JSON(http.StatusOK, themeResponse{Mode: mode})
}

// PutTheme persists the theme preference.
//
// @Summary      Set theme preference
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      themeRequest  true  "Theme mode"
// @Success      200   {object}  themeResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/settings/theme [put]
func (h *SettingsHandler) PutTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.store.SaveTheme(c.Request().Context(), req.Mode); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Mode: req.Mode})
}
