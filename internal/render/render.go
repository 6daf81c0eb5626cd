// Package render turns a content.Page into the portfolio's HTML. The page
// is assembled from a handful of generic template components: a card, a
// titled section wrapped in reveals, and link pills.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/motion"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageTemplate is the name of the full-page template.
const PageTemplate = "page"

// Static returns the embedded stylesheet tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Options configures a Renderer.
type Options struct {
	// BaseURL prefixes every site-relative link, for sites hosted under a
	// sub-path. Empty means the site root.
	BaseURL string
	Motion  motion.Config
}

// Renderer turns a page into HTML. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	base   string
	motion motion.Config
}

// New parses the embedded templates.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Typographer),
		),
		base:   strings.TrimRight(opts.BaseURL, "/"),
		motion: opts.Motion,
	}

	tmpl, err := template.New("folio").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Template is the parsed template set, for engines that execute templates
// themselves.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, p *content.Page, assets Assets) error {
	view, err := r.View(p, assets)
	if err != nil {
		return err
	}
	if err := r.tmpl.ExecuteTemplate(w, PageTemplate, view); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// View builds the data the page template renders.
func (r *Renderer) View(p *content.Page, assets Assets) (*PageView, error) {
	intro, err := r.markdown(p.Hero.Intro)
	if err != nil {
		return nil, err
	}
	motionJSON, err := json.Marshal(r.motion)
	if err != nil {
		return nil, fmt.Errorf("encoding motion config: %w", err)
	}

	v := &PageView{
		Page:     p,
		Title:    p.Title,
		Base:     r.base,
		Intro:    intro,
		Assets:   assets,
		Motion:   string(motionJSON),
		MotionOn: r.motion.Enabled && assets.Motion,
	}
	if v.Title == "" {
		v.Title = p.Owner
	}
	for _, ring := range r.motion.Rings {
		v.Rings = append(v.Rings, ring.Name)
	}

	caser := cases.Title(language.English)
	for _, id := range content.Sections {
		body, err := r.include(id+"-body", sectionData(p, id))
		if err != nil {
			return nil, err
		}
		h := p.Heading(id)
		label := caser.String(id)
		title := h.Title
		if title == "" {
			title = label
		}
		v.Nav = append(v.Nav, NavLink{Href: "#" + id, Label: label})
		v.Sections = append(v.Sections, NewSection(id, title, h.Subtitle, body))
	}
	return v, nil
}

func sectionData(p *content.Page, id string) any {
	switch id {
	case content.SectionProjects:
		return p.Projects
	case content.SectionExperience:
		return p.Experience
	case content.SectionSkills:
		return p.Skills
	case content.SectionPublications:
		return p.Publications
	case content.SectionEducation:
		return p.Education
	}
	return nil
}

// markdown renders trusted page copy. Raw HTML in the source is dropped by
// goldmark, so the result is safe to embed.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) include(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"include":  r.include,
		"card":     NewCard,
		"extLink":  ExternalLink,
		"mailLink": MailLink,
		"plain":    PlainLink,
		"join":     JoinSkills,
		"site":     r.site,
	}
}

// site prefixes a site-relative path with the base URL.
func (r *Renderer) site(path string) string {
	return r.base + path
}
