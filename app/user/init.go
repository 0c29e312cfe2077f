package user

import (
	"github.com/gin-gonic/gin"
	"github.com/propleague/ante/internal/deps"
)

const (
	RepoKey    = "user_repository"
	ServiceKey = "user_service"
)

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container, cfg *Config) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	svc := NewService(repo, container.TokenMaker, cfg.AccessTokenDuration)
	container.RegisterService(ServiceKey, svc)
}

// MountPublic mounts public user routes (registration, login)
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.POST("/register", handler.Register)
	userGroup.POST("/login", handler.Login)
}

// MountAuthenticated mounts authenticated user routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.GET("/profile", handler.GetProfile)
}

func createHandler(container *deps.Container) *Handler {
	svc := container.GetService(ServiceKey).(Service)
	return NewHandler(svc)
}
