package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/configs"
	"github.com/TheLiloji/UberV3-sub000/middlewares"
	"github.com/TheLiloji/UberV3-sub000/pkg/cache"
	"github.com/TheLiloji/UberV3-sub000/pkg/metrics"
	"github.com/TheLiloji/UberV3-sub000/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedRestaurants(db); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	// Cache (optional)
	if err := cache.Connect(cfg.RedisAddr); err != nil {
		log.Println("cache disabled:", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	// Serve uploaded files (avatars)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
