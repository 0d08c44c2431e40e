package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "puentes_admin/internal/adapter/http/dto/response"
	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase"
	"puentes_admin/pkg"
)

var errInvalidRequestID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request id", http.StatusBadRequest)

// RequestHandler handles the change-request feed and resolution endpoints.

type RequestHandler struct {
	feed    usecase.IRequestFeedUseCase
	usecase usecase.IChangeRequestUseCase
}

func NewRequestHandler(feed usecase.IRequestFeedUseCase, uc usecase.IChangeRequestUseCase) *RequestHandler {
	return &RequestHandler{feed: feed, usecase: uc}
}

// List returns one page of the role-scoped feed. Every call refetches from
// the backend; nothing is served from a pre-mutation cache.
func (h *RequestHandler) List(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}

	items, err := h.feed.ListVisible(c.Request.Context(), session)
	if err != nil {
		appErr := mapChangeRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filtered := usecase.SearchFeed(items, c.Query("search"))
	page := pageParam(c)
	totalPages := usecase.TotalPages(len(filtered), usecase.RequestPageSize)
	pageItems := usecase.Paginate(filtered, usecase.RequestPageSize, page)
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	c.JSON(http.StatusOK, response.FromFeedItems(pageItems, page, totalPages, len(filtered)))
}

// Get returns the full record with both snapshots for the detail view.
func (h *RequestHandler) Get(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), session, id)
	if err != nil {
		appErr := mapChangeRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeRequest(r))
}

func (h *RequestHandler) Approve(c *gin.Context) {
	h.resolve(c, entities.RequestStatusAprobado)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	h.resolve(c, entities.RequestStatusRechazado)
}

func (h *RequestHandler) resolve(c *gin.Context, decision entities.RequestStatus) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	resolved, err := h.usecase.Resolve(c.Request.Context(), session, id, decision)
	if err != nil {
		appErr := mapChangeRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeRequest(resolved))
}

func mapChangeRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidDecision), errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_RESOLVED", "Request is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Change request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
