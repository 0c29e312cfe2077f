package league

import (
	"github.com/gin-gonic/gin"

	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "league_repository"
	ServiceKey = "league_service"
)

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container, cfg *Config) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(container.DB, repo, container.Cache, cfg, container.Logger)
	container.RegisterService(ServiceKey, svc)
}

// MountAuthenticated mounts league routes; all of them require auth
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	leagueGroup := r.Group("/leagues")
	leagueGroup.POST("", handler.Create)
	leagueGroup.GET("", handler.ListMine)
	leagueGroup.POST("/join", handler.Join)
	leagueGroup.POST("/:id/leave", handler.Leave)
	leagueGroup.DELETE("/:id", handler.Delete)
	leagueGroup.GET("/:id/members", handler.Members)
	leagueGroup.GET("/:id/leaderboard", handler.Leaderboard)
	leagueGroup.GET("/:id/ledger", handler.Ledger)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
