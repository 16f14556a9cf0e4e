package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-notes/internal/middleware"
	"news-notes/internal/repository"
	"news-notes/internal/web"
)

// RouterConfig bundles the handlers and middleware dependencies the
// router mounts.
type RouterConfig struct {
	Notes    *NoteHandler
	News     *NewsHandler
	Comments *CommentHandler
	Auth     *AuthHandler
	Health   *HealthHandler
	Sessions *middleware.SessionManager
	Users    repository.UserRepository
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cfg.Sessions.Session(cfg.Users))
	router.SetHTMLTemplate(web.Templates())

	router.GET("/", cfg.News.Home)
	router.GET("/news/:id", cfg.News.Detail)
	router.POST("/news/:id", cfg.Comments.Create)

	comments := router.Group("/comments")
	{
		comments.GET("/:id/edit", cfg.Comments.EditForm)
		comments.POST("/:id/edit", cfg.Comments.Edit)
		comments.GET("/:id/delete", cfg.Comments.DeleteForm)
		comments.POST("/:id/delete", cfg.Comments.Delete)
	}

	notes := router.Group("/notes")
	{
		notes.GET("", cfg.Notes.Home)
		notes.GET("/list", cfg.Notes.List)
		notes.GET("/add", cfg.Notes.AddForm)
		notes.POST("/add", cfg.Notes.Add)
		notes.GET("/success", cfg.Notes.Success)
		notes.GET("/:slug", cfg.Notes.Detail)
		notes.GET("/:slug/edit", cfg.Notes.EditForm)
		notes.POST("/:slug/edit", cfg.Notes.Edit)
		notes.GET("/:slug/delete", cfg.Notes.DeleteForm)
		notes.POST("/:slug/delete", cfg.Notes.Delete)
	}

	auth := router.Group("/auth")
	{
		auth.GET("/login", cfg.Auth.LoginForm)
		auth.POST("/login", cfg.Auth.Login)
		auth.GET("/signup", cfg.Auth.SignupForm)
		auth.POST("/signup", cfg.Auth.Signup)
		auth.POST("/logout", cfg.Auth.Logout)
		auth.GET("/logout", cfg.Auth.Logout)
	}

	router.GET("/health", cfg.Health.Health)
	router.GET("/ready", cfg.Health.Ready)
	router.GET("/live", cfg.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(renderNotFound)

	return router
}
