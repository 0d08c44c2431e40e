package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"puentes_admin/internal/adapter/http/handlers"
	"puentes_admin/internal/auth"
)

const (
	PathEstimations = "/estimations"
	PathRequests    = "/requests"
	PathUsers       = "/users"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addDashboardRoutes(
	rg *gin.RouterGroup,
	tokens *auth.TokenManager,
	estimationHandler *handlers.EstimationHandler,
	requestHandler *handlers.RequestHandler,
	userHandler *handlers.UserHandler,
) {
	secured := rg.Group("", auth.RequireSession(tokens))

	estimations := secured.Group(PathEstimations)
	{
		estimations.GET("", estimationHandler.List)
		estimations.POST("", estimationHandler.Create)
		// Edits and deletions of an existing estimation only ever open a
		// change request; there is no PUT or DELETE on this group.
		estimations.POST("/:id/edit-request", estimationHandler.RequestEdit)
		estimations.POST("/:id/delete-request", estimationHandler.RequestDelete)
	}

	requests := secured.Group(PathRequests)
	{
		requests.GET("", requestHandler.List)
		requests.GET("/:id", requestHandler.Get)
		requests.PATCH("/:id/approve", auth.AdminRequired(), requestHandler.Approve)
		requests.PATCH("/:id/reject", auth.AdminRequired(), requestHandler.Reject)
	}

	users := secured.Group(PathUsers, auth.AdminRequired())
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}
}
