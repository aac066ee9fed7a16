package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/api"
	"github.com/devfolio/devfolio/internal/config"
)

type SiteHandler struct {
	cfg config.Config
}

// Get returns the configuration-driven site content consumed by the landing
// pages: identity, hero copy, about blurb, projects, social links.
func (h *SiteHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toAPISite(h.cfg))
}

func toAPISite(cfg config.Config) api.Site {
	site := api.Site{
		Title:       cfg.SiteTitle,
		Description: cfg.Description,
		Author:      cfg.Author,
		BaseURL:     cfg.BaseURL,
		Hero: api.Hero{
			Headline: cfg.Hero.Headline,
			Tagline:  cfg.Hero.Tagline,
		},
		About:    cfg.About,
		Projects: make([]api.Project, 0, len(cfg.Projects)),
		Social:   make([]api.Link, 0, len(cfg.Social)),
	}
	for _, p := range cfg.Projects {
		site.Projects = append(site.Projects, api.Project{
			Name:        p.Name,
			Description: p.Description,
			URL:         p.URL,
			Tags:        p.Tags,
		})
	}
	for _, l := range cfg.Social {
		site.Social = append(site.Social, api.Link{Label: l.Label, URL: l.URL})
	}
	return site
}
