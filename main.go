package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shatel-registry/config"
	"shatel-registry/controllers"
	"shatel-registry/models"
	"shatel-registry/routes"
	"shatel-registry/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Service{},
	)
}

func main() {
	if notify := services.NewNotifyService(); notify.Enabled() {
		controllers.UseNotifier(notify)
		log.Println("Activation SMS notifications enabled")
	}

	audit := services.NewAuditService(config.DB)
	audit.StartScheduler()

	host := config.Env("APP_HOST", config.DefaultHost)
	port := config.Env("APP_PORT", config.DefaultPort)

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(host + ":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
