package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "puentes_admin/internal/adapter/http/dto/request"
	response "puentes_admin/internal/adapter/http/dto/response"
	"puentes_admin/internal/usecase"
	"puentes_admin/pkg"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler handles account administration. The whole group is behind the
// admin middleware; the handlers assume the role check already happened.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// List returns one page of accounts, optionally filtered by name or email.
func (h *UserHandler) List(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filtered := usecase.SearchUsers(all, c.Query("search"))
	page := pageParam(c)
	totalPages := usecase.TotalPages(len(filtered), usecase.UserPageSize)
	items := usecase.Paginate(filtered, usecase.UserPageSize, page)
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	c.JSON(http.StatusOK, response.FromUsers(items, page, totalPages, len(filtered)))
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Create(c.Request.Context(), payload.ToUser(0)); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusCreated)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), payload.ToUser(id)); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
