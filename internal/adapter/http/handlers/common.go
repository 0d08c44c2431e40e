package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"puentes_admin/internal/auth"
	"puentes_admin/internal/infrastructure/backend"
	"puentes_admin/pkg"
)

var errNoSession = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired session", http.StatusUnauthorized)

// sessionFrom pulls the session stored by the auth middleware; aborts with
// 401 when a route was wired without it.
func sessionFrom(c *gin.Context) (auth.Session, bool) {
	session, ok := auth.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return auth.Session{}, false
	}
	return session, true
}

// pageParam reads the ?page query, defaulting to the first page. Values the
// projection cannot use are clamped there, not rejected here.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam reads a positive integer :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// mapBackendError distinguishes a backend rejection from a transport
// failure. Both degrade to an operator-visible error; neither is retried.
func mapBackendError(err error) *pkg.AppError {
	if _, ok := backend.IsStatusError(err); ok {
		return pkg.NewDomainError("BACKEND_REJECTED", "The backend rejected the operation", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Could not reach the backend", err, http.StatusBadGateway)
}
