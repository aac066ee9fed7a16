package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/domain"
	"github.com/devfolio/devfolio/internal/config"
)

// NewApi registers the read-only content API on the router.
func NewApi(router *gin.Engine, repo domain.PostRepository, renderer application.MarkdownRenderer, cfg config.Config) {
	posts := &PostHandler{repo: repo, renderer: renderer}
	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", posts.List)
		postsV1.GET("/:slug", posts.Get)
		postsV1.GET("/:slug/html", posts.GetHTML)
	}

	tagsV1 := router.Group("tags/v1")
	{
		tagsV1.GET("/", posts.ListTags)
	}

	site := &SiteHandler{cfg: cfg}
	siteV1 := router.Group("site/v1")
	{
		siteV1.GET("/", site.Get)
	}
}
