package wager

import (
	"github.com/gin-gonic/gin"

	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "wager_repository"
	ServiceKey = "wager_service"
)

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container, notifier Notifier) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(container.DB, repo, notifier)
	container.RegisterService(ServiceKey, svc)
}

// MountAuthenticated mounts wager routes; all of them require auth
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	propGroup := r.Group("/props")
	propGroup.POST("/:id/wagers", handler.Place)
	propGroup.GET("/:id/wagers", handler.GetPool)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
