package persistence

import (
	"sync"

	"github.com/devfolio/devfolio/blog/domain"
)

var _ domain.PostRepository = (*LivePostRepository)(nil)

// LivePostRepository lets the dev server swap in a freshly built repository
// when the content directory changes. Each underlying repository stays
// immutable; only the reference moves.
type LivePostRepository struct {
	mu      sync.RWMutex
	current domain.PostRepository
}

func NewLivePostRepository(initial domain.PostRepository) *LivePostRepository {
	return &LivePostRepository{current: initial}
}

// Swap replaces the repository served to readers.
func (l *LivePostRepository) Swap(repo domain.PostRepository) {
	l.mu.Lock()
	l.current = repo
	l.mu.Unlock()
}

func (l *LivePostRepository) snapshot() domain.PostRepository {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *LivePostRepository) All() []*domain.Post { return l.snapshot().All() }

func (l *LivePostRepository) GetBySlug(slug string) (*domain.Post, error) {
	return l.snapshot().GetBySlug(slug)
}

func (l *LivePostRepository) Featured() []*domain.Post { return l.snapshot().Featured() }

func (l *LivePostRepository) ByTag(tag string) []*domain.Post { return l.snapshot().ByTag(tag) }

func (l *LivePostRepository) AllTags() []string { return l.snapshot().AllTags() }
