package sitegen

import "html/template"

// Every page is the layout plus one {{define "content"}} block. The layout
// carries the copy-button script so rendered code widgets work on the static
// site without any build-side bundling.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>{{.PageTitle}} | {{.Site.SiteTitle}}</title>
<meta name="description" content="{{.Site.Description}}"/>
<link rel="stylesheet" href="{{.Site.BaseURL}}/css/site.css"/>
</head>
<body>
<header><a href="{{.Site.BaseURL}}/">{{.Site.SiteTitle}}</a></header>
<main>
{{template "content" .}}
</main>
<footer><p>&copy; {{.Site.Author}}</p></footer>
<script>
document.addEventListener('click', function (evt) {
  var btn = evt.target.closest('.code-widget-copy');
  if (!btn) return;
  var widget = btn.closest('.code-widget');
  var block = widget ? widget.querySelector('pre') : null;
  if (!block) return;
  navigator.clipboard.writeText(block.innerText).then(function () {
    var label = btn.textContent;
    btn.textContent = btn.getAttribute('data-copied-label') || 'Copied!';
    setTimeout(function () {
      btn.textContent = label;
    }, parseInt(btn.getAttribute('data-copied-timeout-ms') || '2000', 10));
  });
});
</script>
</body>
</html>`

const indexTemplate = `{{define "content"}}
<section class="hero">
<h1>{{.Site.Hero.Headline}}</h1>
<p>{{.Site.Hero.Tagline}}</p>
</section>
{{if .Site.About}}<section class="about"><h2>About</h2><p>{{.Site.About}}</p></section>{{end}}
{{if .Site.Projects}}<section class="projects">
<h2>Projects</h2>
<ul>
{{range .Site.Projects}}<li><a href="{{.URL}}">{{.Name}}</a><p>{{.Description}}</p></li>
{{end}}</ul>
</section>{{end}}
<section class="posts">
<h2>Writing</h2>
<ul>
{{range .Posts}}<li>
<a href="{{$.Site.BaseURL}}/posts/{{.Slug}}/">{{.Title}}</a>
<time datetime="{{.Date}}">{{.Date}}</time>
{{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}
</li>
{{end}}</ul>
</section>
{{end}}`

const postTemplate = `{{define "content"}}
<article>
<h1>{{.Post.Title}}</h1>
<p class="meta"><time datetime="{{.Post.Date}}">{{.Post.Date}}</time> &middot; {{.Post.ReadTime}} min read</p>
{{if .Post.Tags}}<ul class="tags">
{{range .Post.Tags}}<li><a href="{{$.Site.BaseURL}}/tags/{{tagPath .}}/">{{.}}</a></li>
{{end}}</ul>{{end}}
{{.PostHTML}}
</article>
{{end}}`

const tagTemplate = `{{define "content"}}
<section class="tag-archive">
<h1>{{.PageTitle}}</h1>
<ul>
{{range .Posts}}<li>
<a href="{{$.Site.BaseURL}}/posts/{{.Slug}}/">{{.Title}}</a>
<time datetime="{{.Date}}">{{.Date}}</time>
</li>
{{end}}</ul>
</section>
{{end}}`

const tagsTemplate = `{{define "content"}}
<section class="tags-index">
<h1>Tags</h1>
<ul>
{{range .Tags}}<li><a href="{{$.Site.BaseURL}}/tags/{{tagPath .}}/">{{.}}</a></li>
{{end}}</ul>
</section>
{{end}}`

var pages = map[string]*template.Template{
	"index": mustPage(indexTemplate),
	"post":  mustPage(postTemplate),
	"tag":   mustPage(tagTemplate),
	"tags":  mustPage(tagsTemplate),
}

func mustPage(content string) *template.Template {
	t := template.New("layout").Funcs(template.FuncMap{"tagPath": tagPath})
	return template.Must(template.Must(t.Parse(layoutTemplate)).Parse(content))
}
