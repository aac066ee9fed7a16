package sitegen

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/domain"
	"github.com/devfolio/devfolio/internal/config"
)

// Generator renders the whole site into the configured output directory:
// the landing page, one page per post, one archive per tag, and the tag
// index, plus a verbatim copy of the static assets.
type Generator struct {
	cfg      config.Config
	repo     domain.PostRepository
	renderer application.MarkdownRenderer
}

func New(cfg config.Config, repo domain.PostRepository, renderer application.MarkdownRenderer) *Generator {
	return &Generator{cfg: cfg, repo: repo, renderer: renderer}
}

type pageData struct {
	Site      config.Config
	PageTitle string
	Posts     []*domain.Post
	Post      *domain.Post
	PostHTML  template.HTML
	Tags      []string
	Tag       string
}

// Build cleans the output directory and regenerates every page. A post that
// fails to render is skipped, matching the ingestion policy of never letting
// one document break the site.
func (g *Generator) Build() error {
	out := g.cfg.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", out, err)
	}

	if g.cfg.StaticDir != "" {
		if _, err := os.Stat(g.cfg.StaticDir); err == nil {
			if err := copyDirContents(g.cfg.StaticDir, out); err != nil {
				return fmt.Errorf("failed to copy static assets: %w", err)
			}
		}
	}

	posts := g.repo.All()
	tags := g.repo.AllTags()

	index := pageData{Site: g.cfg, PageTitle: g.cfg.SiteTitle, Posts: posts, Tags: tags}
	if err := g.writePage("index", filepath.Join(out, "index.html"), index); err != nil {
		return err
	}

	for _, p := range posts {
		html, err := g.renderer.Render(p.Body)
		if err != nil {
			log.Error().Err(err).Str("slug", p.Slug).Msg("Skipping post that failed to render")
			continue
		}
		path := filepath.Join(out, "posts", p.Slug, "index.html")
		data := pageData{Site: g.cfg, PageTitle: p.Title, Post: p, PostHTML: html}
		if err := g.writePage("post", path, data); err != nil {
			return err
		}
	}

	titler := cases.Title(language.English)
	for _, tag := range tags {
		dir := tagPath(tag)
		if dir == "" {
			continue
		}
		path := filepath.Join(out, "tags", dir, "index.html")
		data := pageData{Site: g.cfg, PageTitle: titler.String(tag), Tag: tag, Posts: g.repo.ByTag(tag)}
		if err := g.writePage("tag", path, data); err != nil {
			return err
		}
	}

	tagsIndex := pageData{Site: g.cfg, PageTitle: "Tags", Tags: tags}
	return g.writePage("tags", filepath.Join(out, "tags", "index.html"), tagsIndex)
}

func (g *Generator) writePage(page string, path string, data pageData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := pages[page].Execute(f, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// tagPath makes a tag safe to use as a directory name. Lookup still uses the
// exact tag string; this only shapes URLs.
func tagPath(tag string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tag) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
