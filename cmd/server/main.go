package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"eggbreak/internal/config"
	"eggbreak/internal/db"
	"eggbreak/internal/game"
	"eggbreak/internal/handlers"
)

func main() {
	cfg := config.Load()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		var err error
		redisClient, err = db.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis error: %v", err)
		}
	} else {
		log.Printf("redis disabled, sessions are not shared")
	}

	store := game.NewStore(cfg.TotalEggs, game.DefaultSource())
	srv := handlers.NewServer(cfg, store, redisClient)

	r := gin.Default()
	r.Use(handlers.RequestID())

	r.GET("/ws", func(c *gin.Context) {
		srv.HandleWS(c.Writer, c.Request)
	})

	api := r.Group("/api")
	{
		api.GET("/game-state", srv.GetGameState)
		api.POST("/break-egg", srv.BreakEgg)
		api.POST("/claim-rewards", srv.ClaimRewards)
		api.POST("/reset-game", srv.ResetGame)

		api.POST("/auth/login", srv.Login)

		admin := api.Group("/admin", srv.AdminRequired())
		admin.GET("/eggs", srv.GetAllEggs)
		admin.POST("/update-egg", srv.UpdateEgg)
		admin.POST("/set-egg-broken", srv.SetEggBroken)
		admin.POST("/bulk-update-win-rates", srv.BulkUpdateWinRates)
		admin.POST("/bulk-update-rewards", srv.BulkUpdateRewards)
		admin.GET("/global-win-rate", srv.GetGlobalWinRate)
		admin.POST("/global-win-rate", srv.UpdateGlobalWinRate)
		admin.GET("/links", srv.ListLinks)
		admin.POST("/links", srv.CreateLink)
		admin.DELETE("/links/:id", srv.DeleteLink)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	log.Printf("server listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
