package config

type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	Description string `mapstructure:"description"`
	Author      string `mapstructure:"author"`
	BaseURL     string `mapstructure:"baseURL"`
	ContentDir  string `mapstructure:"contentDir"`
	StaticDir   string `mapstructure:"staticDir"`
	OutputDir   string `mapstructure:"outputDir"`
	Port        int    `mapstructure:"port"`

	Hero     Hero      `mapstructure:"hero"`
	About    string    `mapstructure:"about"`
	Projects []Project `mapstructure:"projects"`
	Social   []Link    `mapstructure:"social"`
}

type Hero struct {
	Headline string `mapstructure:"headline"`
	Tagline  string `mapstructure:"tagline"`
}

type Project struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	URL         string   `mapstructure:"url"`
	Tags        []string `mapstructure:"tags"`
}

type Link struct {
	Label string `mapstructure:"label"`
	URL   string `mapstructure:"url"`
}
