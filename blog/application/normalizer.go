package application

import (
	"strings"
	"time"

	"github.com/devfolio/devfolio/blog/domain"
)

const (
	// placeholderTitle fills in for documents whose frontmatter has no title.
	placeholderTitle = "Untitled Post"

	// wordsPerMinute is the reading rate behind read-time estimates.
	wordsPerMinute = 200
)

// NormalizePost projects a parsed document onto a fully populated Post.
// Every frontmatter field wins over its default; absent or mistyped fields
// fall back. fallbackSlug is the source identifier (file base name without
// extension) and position is the 1-based ingestion index, which becomes the
// post id.
func NormalizePost(fm Frontmatter, body string, fallbackSlug string, position int) *domain.Post {
	post := &domain.Post{
		ID:       position,
		Title:    placeholderTitle,
		Slug:     fallbackSlug,
		Date:     time.Now().Format("2006-01-02"),
		Tags:     []string{},
		ReadTime: estimateReadTime(body),
		Body:     body,
	}

	if title, ok := fm.Str("title"); ok {
		post.Title = title
	}
	if slug, ok := fm.Str("slug"); ok && slug != "" {
		post.Slug = slug
	}
	if date, ok := fm.Str("date"); ok {
		post.Date = date
	}
	if excerpt, ok := fm.Str("excerpt"); ok {
		post.Excerpt = excerpt
	}
	if tags, ok := fm.Strings("tags"); ok {
		post.Tags = tags
	}
	if featured, ok := fm.Boolean("featured"); ok {
		post.Featured = featured
	}
	if readTime, ok := fm.Integer("readTime"); ok {
		post.ReadTime = readTime
	}

	return post
}

// estimateReadTime counts whitespace-separated words and divides by the
// reading rate, rounding up. Never less than one minute.
func estimateReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
