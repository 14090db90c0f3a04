package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/app"
	"github.com/BruksfildServices01/studio-gestor/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-gestor/internal/db"
	"github.com/BruksfildServices01/studio-gestor/internal/routes"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	var kv store.KV = store.NewMemoryKV()
	if rdb != nil {
		kv = store.NewRedisKV(rdb)
	} else {
		log.Println("REDIS_ADDR empty, local collections kept in memory")
	}

	a := app.New(db, kv, cfg)
	defer a.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/health/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok"}
		status := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		}
		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = "down"
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, checks)
	})

	routes.RegisterRoutes(r, a, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
