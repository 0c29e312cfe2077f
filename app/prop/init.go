package prop

import (
	"github.com/gin-gonic/gin"

	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "prop_repository"
	ServiceKey = "prop_service"
)

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container, notifier Notifier) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(repo, container.Sanitizer, notifier)
	container.RegisterService(ServiceKey, svc)
}

// MountAuthenticated mounts prop routes; all of them require auth
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	propGroup := r.Group("/props")
	propGroup.POST("", handler.Create)
	propGroup.GET("/:id", handler.Get)

	r.GET("/leagues/:id/props", handler.ListByLeague)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
