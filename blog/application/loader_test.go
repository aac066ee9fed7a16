package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devfolio/devfolio/blog/domain"
)

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-second.md": "---\ntitle: B\n---\nbody b",
		"a-first.md":  "body a",
		"notes.txt":   "not markdown",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}

	sources, err := LoadSources(dir)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("LoadSources() returned %d sources, want 2", len(sources))
	}
	// WalkDir is lexical, so a-first comes before b-second.
	if sources[0].Name != "a-first" || sources[1].Name != "b-second" {
		t.Errorf("source names = %q, %q, want a-first, b-second", sources[0].Name, sources[1].Name)
	}
	if sources[0].Content != "body a" {
		t.Errorf("source content = %q, want file contents", sources[0].Content)
	}
}

func TestLoadSources_MissingDir(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("LoadSources() error = nil, want error for missing directory")
	}
}

func TestBuildPosts_AssignsSequentialIDs(t *testing.T) {
	sources := []Source{
		{Name: "one", Content: "first"},
		{Name: "two", Content: "second"},
	}

	posts := BuildPosts(sources)

	if len(posts) != 2 {
		t.Fatalf("BuildPosts() returned %d posts, want 2", len(posts))
	}
	if posts[0].ID != 1 || posts[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", posts[0].ID, posts[1].ID)
	}
	if posts[0].Slug != "one" || posts[1].Slug != "two" {
		t.Errorf("slugs = %q, %q, want fallback names", posts[0].Slug, posts[1].Slug)
	}
}

func TestBuildPosts_IsolatesFailingDocument(t *testing.T) {
	sources := []Source{
		{Name: "one"}, {Name: "two"}, {Name: "bad"}, {Name: "four"}, {Name: "five"},
	}
	failing := func(src Source, position int) (*domain.Post, error) {
		if src.Name == "bad" {
			return nil, errors.New("boom")
		}
		return &domain.Post{ID: position, Slug: src.Name}, nil
	}

	posts := buildPosts(sources, failing)

	if len(posts) != 4 {
		t.Fatalf("buildPosts() returned %d posts, want 4", len(posts))
	}
	for _, p := range posts {
		if p.Slug == "bad" {
			t.Error("failing document made it into the collection")
		}
	}
}

func TestBuildPosts_IsolatesPanickingDocument(t *testing.T) {
	sources := []Source{
		{Name: "one"}, {Name: "panics"}, {Name: "three"},
	}
	panicking := func(src Source, position int) (*domain.Post, error) {
		if src.Name == "panics" {
			panic("unexpected structural error")
		}
		return &domain.Post{ID: position, Slug: src.Name}, nil
	}

	posts := buildPosts(sources, panicking)

	if len(posts) != 2 {
		t.Fatalf("buildPosts() returned %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "one" || posts[1].Slug != "three" {
		t.Errorf("surviving slugs = %q, %q, want one, three", posts[0].Slug, posts[1].Slug)
	}
	// Positions are assigned before the failure is known, so ids keep gaps.
	if posts[1].ID != 3 {
		t.Errorf("id after skipped document = %d, want 3", posts[1].ID)
	}
}
