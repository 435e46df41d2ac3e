package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"waterme/config"
	"waterme/db"
	"waterme/handlers"
	"waterme/services"
	"waterme/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.ApplySchema(conn); err != nil {
		log.Fatal("Failed to apply schema: ", err)
	}
	log.Println("Database schema verified")

	mailer := services.NewMailer(cfg)
	authHandler := handlers.NewAuthHandler(store.NewUserStore(conn), mailer)
	plantHandler := handlers.NewPlantHandler(store.NewPlantStore(conn))
	adminHandler := handlers.NewAdminHandler(conn)

	r := gin.Default()

	// The Android client calls from a different origin.
	r.Use(cors.Default())

	r.GET("/", handlers.Home)
	r.GET("/update_db_light", adminHandler.UpdateDBLight)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	r.POST("/plants", plantHandler.Create)
	r.GET("/plants/:user_id", plantHandler.List)
	r.PUT("/plants/:plant_id", plantHandler.Update)
	r.DELETE("/plants/:plant_id", plantHandler.Delete)

	fmt.Println("Server starting on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}
