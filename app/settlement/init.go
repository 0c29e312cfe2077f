package settlement

import (
	"github.com/gin-gonic/gin"

	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "settlement_repository"
	ServiceKey = "settlement_service"
)

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container, cfg *Config, notifier Notifier) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(container.DB, repo, NewPayoutEngine(cfg), notifier)
	container.RegisterService(ServiceKey, svc)
}

// MountAuthenticated mounts settlement routes; all of them require auth
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	propGroup := r.Group("/props")
	propGroup.POST("/:id/resolve", handler.Resolve)
	propGroup.POST("/:id/cancel", handler.Cancel)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
