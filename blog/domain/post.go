package domain

import "errors"

// ErrPostNotFound is returned by slug lookups that match nothing.
var ErrPostNotFound = errors.New("post not found")

// Post represents a blog post
// A post is built once, at startup, from a Markdown source document with an
// optional frontmatter header. It is never mutated afterwards.
type Post struct {
	ID       int
	Title    string
	Slug     string
	Date     string // ISO 8601 calendar date, YYYY-MM-DD
	Excerpt  string
	Tags     []string
	Featured bool
	ReadTime int // estimated minutes
	Body     string
}

// PostRepository exposes read access to the sorted post collection.
// Accessors never mutate the collection.
type PostRepository interface {
	All() []*Post
	GetBySlug(slug string) (*Post, error)
	Featured() []*Post
	ByTag(tag string) []*Post
	AllTags() []string
}
