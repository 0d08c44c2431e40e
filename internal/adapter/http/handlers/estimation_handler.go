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

var errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)

// EstimationHandler handles the estimation registry endpoints.
//
// Create is direct; the edit-request and delete-request endpoints never
// touch the registry — they route into the change-request workflow, which
// is the only path allowed to propose mutations of an existing record.

type EstimationHandler struct {
	estimations usecase.IEstimationUseCase
	requests    usecase.IChangeRequestUseCase
}

func NewEstimationHandler(estimations usecase.IEstimationUseCase, requests usecase.IChangeRequestUseCase) *EstimationHandler {
	return &EstimationHandler{estimations: estimations, requests: requests}
}

// List returns one page of estimations, optionally filtered by
// superstructure or abutment type.
func (h *EstimationHandler) List(c *gin.Context) {
	all, err := h.estimations.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filtered := usecase.SearchEstimations(all, c.Query("search"))
	page := pageParam(c)
	totalPages := usecase.TotalPages(len(filtered), usecase.EstimationPageSize)
	items := usecase.Paginate(filtered, usecase.EstimationPageSize, page)
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	c.JSON(http.StatusOK, response.FromEstimations(items, page, totalPages, len(filtered)))
}

// Create submits the structural inputs to the prediction model. No approval
// involved: creation is the one direct write on estimations.
func (h *EstimationHandler) Create(c *gin.Context) {
	var payload request.CreateEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	created, err := h.estimations.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimation(created))
}

// RequestEdit opens an edit change request for the estimation in :id.
func (h *EstimationHandler) RequestEdit(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	var payload request.EditRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	created, err := h.requests.CreateEditRequest(c.Request.Context(), session, id, payload.ToSnapshot())
	if err != nil {
		appErr := mapChangeRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeRequest(created))
}

// RequestDelete opens a deletion change request for the estimation in :id.
func (h *EstimationHandler) RequestDelete(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}

	created, err := h.requests.CreateDeleteRequest(c.Request.Context(), session, id)
	if err != nil {
		appErr := mapChangeRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeRequest(created))
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
