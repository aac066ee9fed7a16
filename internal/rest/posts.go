package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/api"
	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/domain"
)

type PostHandler struct {
	repo     domain.PostRepository
	renderer application.MarkdownRenderer
}

// List returns post metadata in repository order (most recent first).
// ?featured=true narrows to featured posts; ?tag= narrows to an exact tag
// match.
func (h *PostHandler) List(c *gin.Context) {
	var posts []*domain.Post
	switch {
	case c.Query("featured") == "true":
		posts = h.repo.Featured()
	case c.Query("tag") != "":
		posts = h.repo.ByTag(c.Query("tag"))
	default:
		posts = h.repo.All()
	}

	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toAPIPost(p, false))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one post, body included. A miss is a JSON 404, not an error.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toAPIPost(post, true))
}

// GetHTML returns the sanitized rendered body of one post.
func (h *PostHandler) GetHTML(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html, err := h.renderer.Render(post.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render post"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PostHandler) ListTags(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.AllTags())
}

func toAPIPost(p *domain.Post, includeBody bool) api.Post {
	out := api.Post{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Date:     p.Date,
		Excerpt:  p.Excerpt,
		Tags:     p.Tags,
		Featured: p.Featured,
		ReadTime: p.ReadTime,
	}
	if includeBody {
		out.Body = p.Body
	}
	return out
}
