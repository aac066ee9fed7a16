package application

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePost_Defaults(t *testing.T) {
	body := "a few words of body text"

	post := NormalizePost(Frontmatter{}, body, "fallback-slug", 3)

	if post.ID != 3 {
		t.Errorf("ID = %d, want 3", post.ID)
	}
	if post.Title != "Untitled Post" {
		t.Errorf("Title = %q, want placeholder", post.Title)
	}
	if post.Slug != "fallback-slug" {
		t.Errorf("Slug = %q, want fallback", post.Slug)
	}
	if want := time.Now().Format("2006-01-02"); post.Date != want {
		t.Errorf("Date = %q, want today %q", post.Date, want)
	}
	if post.Excerpt != "" {
		t.Errorf("Excerpt = %q, want empty", post.Excerpt)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", post.Tags)
	}
	if post.Featured {
		t.Error("Featured = true, want false")
	}
	if post.ReadTime != 1 {
		t.Errorf("ReadTime = %d, want 1", post.ReadTime)
	}
	if post.Body != body {
		t.Errorf("Body = %q, want input body", post.Body)
	}
}

func TestNormalizePost_FrontmatterWins(t *testing.T) {
	fm, body := ParseFrontmatter("---\n" +
		"title: \"Real Title\"\n" +
		"slug: real-slug\n" +
		"date: 2023-06-01\n" +
		"excerpt: \"One line.\"\n" +
		"tags: [\"Go\"]\n" +
		"featured: true\n" +
		"readTime: 42\n" +
		"---\n" +
		"body")

	post := NormalizePost(fm, body, "fallback", 1)

	if post.Title != "Real Title" {
		t.Errorf("Title = %q, want frontmatter value", post.Title)
	}
	if post.Slug != "real-slug" {
		t.Errorf("Slug = %q, want frontmatter value", post.Slug)
	}
	if post.Date != "2023-06-01" {
		t.Errorf("Date = %q, want frontmatter value", post.Date)
	}
	if post.Excerpt != "One line." {
		t.Errorf("Excerpt = %q, want frontmatter value", post.Excerpt)
	}
	if len(post.Tags) != 1 || post.Tags[0] != "Go" {
		t.Errorf("Tags = %v, want [Go]", post.Tags)
	}
	if !post.Featured {
		t.Error("Featured = false, want true")
	}
	if post.ReadTime != 42 {
		t.Errorf("ReadTime = %d, want frontmatter value 42", post.ReadTime)
	}
}

func TestNormalizePost_EmptySlugFallsBack(t *testing.T) {
	fm, body := ParseFrontmatter("---\nslug: \"\"\n---\nbody")

	post := NormalizePost(fm, body, "from-filename", 1)

	if post.Slug != "from-filename" {
		t.Errorf("Slug = %q, want fallback for empty frontmatter slug", post.Slug)
	}
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		expected int
	}{
		{name: "Empty body", words: 0, expected: 1},
		{name: "Single word", words: 1, expected: 1},
		{name: "Exactly one minute", words: 200, expected: 1},
		{name: "Just over one minute", words: 201, expected: 2},
		{name: "Two minutes", words: 400, expected: 2},
		{name: "Rounds up", words: 450, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.TrimSpace(strings.Repeat("word ", tt.words))
			result := estimateReadTime(body)
			if result != tt.expected {
				t.Errorf("estimateReadTime(%d words) = %d, want %d", tt.words, result, tt.expected)
			}
		})
	}
}
