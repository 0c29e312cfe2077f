package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "notification_repository"
	ServiceKey = "notification_service"
)

// InitRepositories initializes and registers repositories and services for
// this module. It runs before the modules that emit notifications so the
// service can be handed to them as their emitter.
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(repo, container.Logger)
	container.RegisterService(ServiceKey, svc)
}

// MountAuthenticated mounts notification routes; all of them require auth
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/notifications")
	group.GET("", handler.List)
	group.POST("/:id/read", handler.MarkRead)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
