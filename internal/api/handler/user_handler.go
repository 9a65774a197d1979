package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/api/metrics"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/api/middleware"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/ports"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /users/signup.
//
// @Summary      Register a new user account
// @Tags         users
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        username         formData  string  true   "Username (3-30 chars)"
// @Param        email            formData  string  true   "Email address"
// @Param        password         formData  string  true   "Password"
// @Param        confirmPassword  formData  string  true   "Password confirmation"
// @Param        image            formData  file    false  "Avatar image (png/jpeg/gif, max 6MB)"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsRejectedTotal.WithLabelValues("validation").Inc()
		return err
	}

	imagePath, _ := c.Get(middleware.ImagePathKey).(string)

	user, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		ImagePath: imagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.SignupsRejectedTotal.WithLabelValues("conflict").Inc()
		case errors.Is(err, domain.ErrUploadFailed):
			metrics.SignupsRejectedTotal.WithLabelValues("upload").Inc()
			metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
		case errors.Is(err, domain.ErrNoImage):
			metrics.SignupsRejectedTotal.WithLabelValues("no_image").Inc()
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	if imagePath != "" {
		metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
	}

	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "User created successfully",
		Payload: userPayload{User: toUserResponse(user)},
	})
}

// List handles GET /users.
//
// @Summary      List users with pagination and filters
// @Tags         users
// @Produce      json
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size (default 10, max 100)"
// @Param        search    query  string  false  "Case-insensitive substring over username/email/role"
// @Param        role      query  string  false  "Exact role filter (user|admin)"
// @Param        isActive  query  bool    false  "Exact active-flag filter"
// @Param        sort      query  string  false  "Sort field (createdAt|username|email)"
// @Param        order     query  string  false  "Sort order (asc|desc)"
// @Success      200  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	input := ports.ListUsersInput{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
		SortBy: c.QueryParam("sort"),
		Order:  c.QueryParam("order"),
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		input.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		input.Limit = v
	}
	if raw := c.QueryParam("isActive"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			input.IsActive = &v
		}
	}

	result, err := h.service.ListUsers(c.Request().Context(), input)
	if err != nil {
		return err
	}

	users := toUserListResponse(result.Items)
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Users returned successfully",
		Payload: listUsersPayload{
			Users:     users,
			Count:     len(users),
			TotalUser: result.Total,
			Pagination: paginationResponse{
				Page:       result.Pagination.Page,
				Limit:      result.Pagination.Limit,
				TotalPages: result.Pagination.TotalPages,
				HasNext:    result.Pagination.HasNext,
				HasPrev:    result.Pagination.HasPrev,
			},
		},
	})
}

// Get handles GET /users/:id.
//
// @Summary      Get a single user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id (24-char hex)"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "User returned successfully",
		Payload: userPayload{User: toUserResponse(user)},
	})
}

// Update handles PUT /users/:id.
//
// @Summary      Update a user's username
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id (24-char hex)"
// @Param        body  body  updateUserRequest  true  "Fields to update (username only)"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "User updated successfully",
		Payload: userPayload{User: toUserResponse(user)},
	})
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id (24-char hex)"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "User deleted successfully",
		Payload: userPayload{User: toUserResponse(user)},
	})
}
