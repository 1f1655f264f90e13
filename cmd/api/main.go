package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/TurneroApp/cancha-scheduler/internal/cache"
	"github.com/TurneroApp/cancha-scheduler/internal/config"
	dbpkg "github.com/TurneroApp/cancha-scheduler/internal/db"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	"github.com/TurneroApp/cancha-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewRedisClient(cfg.RedisAddr)
	if redisClient == nil {
		log.Println("redis not available, read cache disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
