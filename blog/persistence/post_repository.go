package persistence

import (
	"sort"

	"github.com/devfolio/devfolio/blog/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*MemoryPostRepository)(nil)

// MemoryPostRepository holds the immutable, date-sorted post collection
// built once at startup. There is no write path; content only changes when
// the collection is rebuilt from source.
type MemoryPostRepository struct {
	posts []*domain.Post
}

// NewPostRepository sorts the ingested posts by date descending. Ids break
// ties, so posts sharing a date keep ingestion order. Duplicate slugs are
// allowed but logged; the first post in sort order wins slug lookups.
func NewPostRepository(posts []*domain.Post) *MemoryPostRepository {
	sorted := make([]*domain.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	seen := make(map[string]bool, len(sorted))
	for _, p := range sorted {
		if seen[p.Slug] {
			log.Warn().Str("slug", p.Slug).Msg("Duplicate slug; only the first post in sort order is reachable by slug")
			continue
		}
		seen[p.Slug] = true
	}

	return &MemoryPostRepository{posts: sorted}
}

// All returns every post, most recent first.
func (r *MemoryPostRepository) All() []*domain.Post {
	return r.posts
}

// GetBySlug returns the first post whose slug matches exactly. Matching is
// case-sensitive.
func (r *MemoryPostRepository) GetBySlug(slug string) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// Featured returns the featured posts in repository order.
func (r *MemoryPostRepository) Featured() []*domain.Post {
	out := make([]*domain.Post, 0)
	for _, p := range r.posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByTag returns the posts carrying tag, in repository order. Matching is
// exact string comparison.
func (r *MemoryPostRepository) ByTag(tag string) []*domain.Post {
	out := make([]*domain.Post, 0)
	for _, p := range r.posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// AllTags returns every distinct tag across every post, sorted ascending.
func (r *MemoryPostRepository) AllTags() []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range r.posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
