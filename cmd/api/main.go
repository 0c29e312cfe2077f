package main

import (
	"fmt"
	"log"
	"os"

	"github.com/propleague/ante/internal/cache"
	"github.com/propleague/ante/internal/deps"
	"github.com/propleague/ante/internal/logger"
	"github.com/propleague/ante/internal/router"
	"github.com/propleague/ante/internal/sanitizer"
	"github.com/propleague/ante/internal/security"

	"github.com/propleague/ante/app"
	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/database"
	apiDoc "github.com/propleague/ante/app/doc"
	"github.com/propleague/ante/app/league"
	"github.com/propleague/ante/app/notification"
	"github.com/propleague/ante/app/prop"
	"github.com/propleague/ante/app/settlement"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/app/wager"
	_ "github.com/propleague/ante/docs"

	"github.com/gin-gonic/gin"
)

// @title Ante API
// @version 1.0
// @description League-based proposition wagering: leagues, props, wagers, settlement and notifications.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}
// @termsOfService https://propleague.app/terms

// @contact.name API Support Team
// @contact.url https://propleague.app/support
// @contact.email support@propleague.app

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.

// @servers.url http://localhost:8080/api/v1
// @servers.description Local Development Server

// @servers.url https://staging.propleague.app/api/v1
// @servers.description Staging Server

// @servers.url https://propleague.app/api/v1
// @servers.description Production Server
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.User.SymmetricKey)
	if err != nil {
		log.Fatal("cannot create token maker:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"app": "ante"})
	cacheService := newCache(cfg)
	htmlSanitizer := sanitizer.NewHTMLStripper()

	container := deps.NewContainer(db, tokenMaker, htmlSanitizer, appLogger, cacheService)

	// The notification module registers first so its service can be handed to
	// the modules that emit notifications.
	notification.InitRepositories(container)
	notifier := container.GetService(notification.ServiceKey).(notification.Service)

	user.InitRepositories(container, &cfg.User)
	league.InitRepositories(container, &cfg.League)
	prop.InitRepositories(container, notifier)
	wager.InitRepositories(container, notifier)
	settlement.InitRepositories(container, &cfg.Settlement, notifier)

	r := gin.Default()
	r.Use(api.CorsMiddleware())
	mounter := router.NewMounter(container)

	mounter.Public(r).
		Mount(mountHealth).
		Mount(user.MountPublic)

	mounter.Authenticated(r).
		WithAuth(user.AuthMiddleware(tokenMaker)).
		Mount(user.MountAuthenticated).
		Mount(league.MountAuthenticated).
		Mount(prop.MountAuthenticated).
		Mount(wager.MountAuthenticated).
		Mount(settlement.MountAuthenticated).
		Mount(notification.MountAuthenticated)

	apiDoc.Init(r)

	log.Printf("Starting Ante API server on %s:%s", cfg.AppHost, cfg.AppPort)
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func mountHealth(r *gin.RouterGroup, _ *deps.Container) {
	r.GET("/healthz", api.HealthCheck)
}

func newCache(cfg *app.Config) cache.Cache[string] {
	if cfg.CacheBackend == cache.RedisBackend {
		return cache.NewCache[string](cache.RedisBackend, &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return cache.NewCache[string](cache.MemoryBackend)
}
