package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/chimeramatch/server/internal/config"
	"github.com/chimeramatch/server/internal/games/chicken"
	"github.com/chimeramatch/server/internal/games/connectm"
	"github.com/chimeramatch/server/internal/games/p1wins"
	"github.com/chimeramatch/server/internal/history"
	"github.com/chimeramatch/server/internal/middleware"
	"github.com/chimeramatch/server/internal/server"
	"github.com/chimeramatch/server/internal/slugs"
	"github.com/chimeramatch/server/internal/transport"
)

func main() {
	fmt.Println("Starting Chimera match server...")

	cfg := config.Load()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg))

	var historyStore *history.Store
	var recorder server.HistoryRecorder
	if cfg.Database.Enabled {
		store, err := history.NewStore(cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to match history database: %v", err)
		}
		historyStore = store
		recorder = store
	}

	var slugAllocator slugs.Allocator
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Pass,
			DB:       cfg.Redis.DB,
		})
		slugAllocator = slugs.NewRedisAllocator(redisClient, "chimera:slug:", time.Now().UnixNano())
	} else {
		slugAllocator = slugs.NewMemoryAllocator(time.Now().UnixNano())
	}

	dispatcher := server.NewDispatcher(slugAllocator, recorder)
	registerGames(dispatcher, cfg.Server.Games)

	router.GET("/", func(c *gin.Context) {
		transport.ServeWs(dispatcher, c)
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Server is running",
			"env":     cfg.Server.Env,
		})
	})

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server running on %s in %s mode", serverAddr, cfg.Server.Env)
	if err := router.Run(serverAddr); err != nil {
		if historyStore != nil {
			historyStore.Close()
		}
		log.Fatalf("Server failed to start: %v", err)
	}
}

// registerGames wires the requested game identifiers to their factories.
// Unknown identifiers are logged and skipped rather than failing startup.
func registerGames(d *server.Dispatcher, games []string) {
	for _, id := range games {
		switch id {
		case "p1wins":
			d.RegisterGame(id, p1wins.New, "Player One Wins: a one-round game player one always wins")
		case "chicken":
			d.RegisterGame(id, chicken.New, "Chicken: repeated rounds of swerve or don't")
		case "connectm":
			d.RegisterGame(id, connectm.New, "Connect-M: Connect Four generalized to M in a row")
		default:
			log.Printf("chimera: unknown game %q in CHIMERA_GAMES, skipping", id)
		}
	}
}
