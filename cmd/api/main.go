package main

import (
	_ "puentes_admin/docs"
	"puentes_admin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimation Dashboard API
// @version         1.0
// @description     Admin dashboard service for bridge cost estimations, change requests and users, backed by the remote estimation REST service.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
