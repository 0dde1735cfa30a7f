package main

import (
	_ "skiphire/docs"
	"skiphire/internal/adapter/http/routes"
	"skiphire/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Skip Hire Booking API
// @version         1.0
// @description     Skip selection step of the skip-hire booking flow: skip sizes by location, selection and quotes backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.MustLoad())
}
