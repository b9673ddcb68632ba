package main

import (
	_ "quotedesk/docs"
	"quotedesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Desk API
// @version         1.0
// @description     Sales quote review workflow (submission, approval, conversion) with an immutable integration log, backed by DynamoDB and S3.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
