package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/api/metrics"
	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
	"github.com/adminhub/console-api/internal/core/service"
)

// UserHandler exposes the record store and its derived view. Authorization is
// enforced by the route middleware; duplicate and field validation happens
// here, before the store is ever touched.
type UserHandler struct {
	store ports.UserStore
}

func NewUserHandler(store ports.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// List returns the derived view together with the store state.
//
// @Summary      List users (filtered, sorted)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toListResponse(h.store.View()))
}

// Sync imports the remote directory into the store.
//
// @Summary      Sync users from the remote directory
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  syncResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/users/sync [post]
func (h *UserHandler) Sync(c echo.Context) error {
	if err := h.store.Fetch(c.Request().Context()); err != nil {
		metrics.DirectorySyncsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	metrics.DirectorySyncsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, syncResponse{Imported: len(h.store.All())})
}

// Create adds a user record after validating the caller-side contract.
//
// @Summary      Add a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  fieldErrorsResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := toUserInput(req)
	if errs := service.ValidateNewUser(input, h.store.All()); errs != nil {
		metrics.ValidationFailuresTotal.Inc()
		return c.JSON(http.StatusUnprocessableEntity, fieldErrorsResponse{
			Error:  "validation failed",
			Fields: errs,
		})
	}

	user := h.store.Add(input)
	metrics.UserMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update merges a partial patch over an existing record.
//
// @Summary      Edit a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User identifier"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  fieldErrorsResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	patch := toUserPatch(req)
	if errs := service.ValidateUserPatch(id, patch, h.store.All()); errs != nil {
		metrics.ValidationFailuresTotal.Inc()
		return c.JSON(http.StatusUnprocessableEntity, fieldErrorsResponse{
			Error:  "validation failed",
			Fields: errs,
		})
	}

	user, ok := h.store.Update(id, patch)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Error()})
	}
	metrics.UserMutationsTotal.WithLabelValues("edit").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a record.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User identifier"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	if !h.store.Remove(id) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Error()})
	}
	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetFilters merges partial filter criteria into the store.
//
// @Summary      Update filter criteria
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setFiltersRequest  true  "Criteria to merge"
// @Success      200   {object}  listUsersResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/users/filters [put]
func (h *UserHandler) SetFilters(c echo.Context) error {
	var req setFiltersRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.store.SetFilters(toFilterPatch(req))
	return c.JSON(http.StatusOK, toListResponse(h.store.View()))
}

// SetSort replaces the sort configuration.
//
// @Summary      Update sort configuration
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setSortRequest  true  "Sort configuration"
// @Success      200   {object}  listUsersResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/users/sort [put]
func (h *UserHandler) SetSort(c echo.Context) error {
	var req setSortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.store.SetSort(domain.SortConfig{
		Field: domain.SortField(req.Field),
		Order: domain.SortOrder(req.Order),
	})
	return c.JSON(http.StatusOK, toListResponse(h.store.View()))
}
