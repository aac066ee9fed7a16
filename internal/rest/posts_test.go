package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/api"
	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/domain"
	"github.com/devfolio/devfolio/blog/persistence"
	"github.com/devfolio/devfolio/internal/config"
)

func newTestRouter(t *testing.T, posts []*domain.Post) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	repo := persistence.NewPostRepository(posts)
	cfg := config.Config{SiteTitle: "Test Site", Author: "Tester"}
	NewApi(router, repo, application.NewMarkdownRenderer(), cfg)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func testPosts() []*domain.Post {
	return []*domain.Post{
		{ID: 1, Title: "Newest", Slug: "newest", Date: "2024-03-01", Tags: []string{"Go"}, Featured: true, ReadTime: 3, Body: "# Newest\n\nHello."},
		{ID: 2, Title: "Middle", Slug: "middle", Date: "2024-02-20", Tags: []string{"Rust"}, ReadTime: 1, Body: "middle body"},
		{ID: 3, Title: "Oldest", Slug: "oldest", Date: "2024-01-15", Tags: []string{"Go", "Rust"}, ReadTime: 1, Body: "oldest body"},
	}
}

func TestListPosts(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var posts []api.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	if posts[0].Slug != "newest" || posts[2].Slug != "oldest" {
		t.Errorf("order = %q ... %q, want newest ... oldest", posts[0].Slug, posts[2].Slug)
	}
	if posts[0].Body != "" {
		t.Error("list response must not include post bodies")
	}
}

func TestListPosts_FilterByTag(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/?tag=Rust")

	var posts []api.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "middle" || posts[1].Slug != "oldest" {
		t.Errorf("filtered order = %q, %q, want middle, oldest", posts[0].Slug, posts[1].Slug)
	}
}

func TestListPosts_FilterFeatured(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/?featured=true")

	var posts []api.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "newest" {
		t.Errorf("featured = %v, want just newest", posts)
	}
}

func TestGetPost(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/newest")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var post api.Post
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if post.Slug != "newest" {
		t.Errorf("slug = %q, want newest", post.Slug)
	}
	if post.Body == "" {
		t.Error("detail response must include the body")
	}
}

func TestGetPost_NotFound(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetPostHTML(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/posts/v1/newest/html")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "<h1") {
		t.Errorf("rendered body missing heading:\n%s", w.Body.String())
	}
}

func TestListTags(t *testing.T) {
	router := newTestRouter(t, testPosts())

	w := get(router, "/tags/v1/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var tags []string
	if err := json.Unmarshal(w.Body.Bytes(), &tags); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"Go", "Rust"}
	if len(tags) != 2 || tags[0] != want[0] || tags[1] != want[1] {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestGetSite(t *testing.T) {
	router := newTestRouter(t, nil)

	w := get(router, "/site/v1/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var site api.Site
	if err := json.Unmarshal(w.Body.Bytes(), &site); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if site.Title != "Test Site" || site.Author != "Tester" {
		t.Errorf("site = %+v, want configured identity", site)
	}
}
