package application

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/devfolio/devfolio/blog/domain"
	"github.com/rs/zerolog/log"
)

// Source is one raw content document awaiting ingestion. Name is the file
// base name without extension and doubles as the fallback slug.
type Source struct {
	Name    string
	Content string
}

// LoadSources collects every markdown document under dir. WalkDir visits
// files lexically, so ingestion order is deterministic across runs.
func LoadSources(dir string) ([]Source, error) {
	var sources []Source
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		sources = append(sources, Source{Name: name, Content: string(raw)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content directory %s: %w", dir, err)
	}
	return sources, nil
}

type normalizeFunc func(src Source, position int) (*domain.Post, error)

// BuildPosts ingests every source in one synchronous pass. A document that
// fails normalization is logged and skipped; the rest of the collection is
// unaffected.
func BuildPosts(sources []Source) []*domain.Post {
	return buildPosts(sources, normalizeSource)
}

func buildPosts(sources []Source, normalize normalizeFunc) []*domain.Post {
	posts := make([]*domain.Post, 0, len(sources))
	for i, src := range sources {
		post, err := safeNormalize(src, i+1, normalize)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name).Msg("Skipping document that failed normalization")
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func normalizeSource(src Source, position int) (*domain.Post, error) {
	fm, body := ParseFrontmatter(src.Content)
	return NormalizePost(fm, body, src.Name, position), nil
}

// safeNormalize converts a panicking normalizer into an error so one bad
// document cannot abort the whole build.
func safeNormalize(src Source, position int, normalize normalizeFunc) (post *domain.Post, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("normalization panicked for %s: %v", src.Name, r)
		}
	}()
	return normalize(src, position)
}
