package api

type Post struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	ReadTime int      `json:"read_time"`
	Body     string   `json:"body,omitempty"`
}

// Site carries the configuration-driven page content: identity, hero copy,
// the about blurb, and the project showcase.
type Site struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	BaseURL     string    `json:"base_url"`
	Hero        Hero      `json:"hero"`
	About       string    `json:"about"`
	Projects    []Project `json:"projects"`
	Social      []Link    `json:"social"`
}

type Hero struct {
	Headline string `json:"headline"`
	Tagline  string `json:"tagline"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
