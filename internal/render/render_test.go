package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/motion"
)

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	require.NoError(t, err)
	return r
}

func renderDoc(t *testing.T, r *Renderer, p *content.Page, assets Assets) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p, assets))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func allAssets() Assets {
	return Assets{Resume: true, Profile: true, Motion: true}
}

func TestRender_ProjectBulletsInOrder(t *testing.T) {
	p := content.Default()
	p.Projects = []content.Project{{
		Title:   "Widget",
		Bullets: []string{"first", "second", "third"},
	}}

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	items := doc.Find("#projects .project-card li")
	require.Equal(t, 3, items.Length())
	var got []string
	items.Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Text())
	})
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestRender_PublicationLink(t *testing.T) {
	p := content.Default()
	url := "https://link.springer.com/article/10.1007/s42979-025-03677-z"
	p.Publications = []content.Publication{{Title: "Paper", Venue: "Journal", Date: "2024", URL: url}}

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	link := doc.Find("#publications a.button")
	require.Equal(t, 1, link.Length())
	href, _ := link.Attr("href")
	assert.Equal(t, url, href)
	target, _ := link.Attr("target")
	assert.Equal(t, "_blank", target)
	rel, _ := link.Attr("rel")
	assert.Equal(t, "noopener noreferrer", rel)
	label, _ := link.Attr("aria-label")
	assert.Equal(t, "Open publication: Paper", label)
	assert.Equal(t, "View Article", strings.TrimSpace(link.Text()))
}

func TestRender_LinksKeepLiteralURL(t *testing.T) {
	urls := []string{
		"https://example.org/a(b)?q=x y",
		"https://example.org/café/paper",
		`https://example.org/p?a=1&b="2"`,
	}
	p := content.Default()
	p.Publications = nil
	for i, u := range urls {
		p.Publications = append(p.Publications, content.Publication{Title: fmt.Sprintf("Paper %d", i), URL: u})
	}
	p.Socials = []content.SocialLink{{Label: "Wiki", Icon: "book", URL: urls[0]}}

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	var got []string
	doc.Find("#publications a.button").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("href", ""))
	})
	assert.Equal(t, urls, got)
	assert.Equal(t, urls[0], doc.Find(".socials a").AttrOr("href", ""))
}

func TestRender_MalformedPublicationURLIsInert(t *testing.T) {
	p := content.Default()
	p.Publications = []content.Publication{{Title: "Paper", URL: "javascript:alert(1)"}}

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	assert.Equal(t, 0, doc.Find("#publications a").Length())
	inert := doc.Find("#publications .button--inert")
	require.Equal(t, 1, inert.Length())
	assert.Equal(t, "true", inert.AttrOr("aria-disabled", ""))
}

func TestRender_SkipLinkAndMain(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	first := doc.Find("a[href], button, [tabindex]").First()
	assert.True(t, first.HasClass("skip-link"))
	assert.Equal(t, "#main", first.AttrOr("href", ""))

	main := doc.Find("main#main")
	require.Equal(t, 1, main.Length())
	assert.Equal(t, "-1", main.AttrOr("tabindex", ""))
}

func TestRender_NavAnchors(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	var hrefs []string
	doc.Find(".topnav__links a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	assert.Equal(t, []string{"#projects", "#experience", "#skills", "#publications", "#education"}, hrefs)
	for _, id := range content.Sections {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), id)
	}
	assert.Equal(t, "Projects", strings.TrimSpace(doc.Find(".topnav__links a").First().Text()))
}

func TestRender_SectionHeadings(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	assert.Equal(t, "Education & Recognition", doc.Find("#education-title").Text())
	assert.Equal(t, "Projects", doc.Find("#projects-title").Text())
	assert.Equal(t, "Peer-reviewed & journal articles.", doc.Find("#publications .section__subtitle").Text())
	assert.Equal(t, 0, doc.Find("#projects .section__subtitle").Length())
}

func TestRender_SectionRevealTargets(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	reveals := doc.Find("#skills [data-reveal]")
	require.Equal(t, 2, reveals.Length())
	assert.Equal(t, "skills-head", reveals.Eq(0).AttrOr("data-reveal", ""))
	assert.Equal(t, "0", reveals.Eq(0).AttrOr("data-reveal-delay", ""))
	assert.Equal(t, "skills-body", reveals.Eq(1).AttrOr("data-reveal", ""))
	assert.Equal(t, "0.05", reveals.Eq(1).AttrOr("data-reveal-delay", ""))
}

func TestRender_MissingResumeIsInert(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), Assets{Profile: true})

	assert.Equal(t, 0, doc.Find(`a[href="/resume.pdf"]`).Length())
	assert.Equal(t, 1, doc.Find(".hero .pill--inert").Length())
	assert.Contains(t, doc.Find(".hero .pill--inert").Text(), "Résumé unavailable")
}

func TestRender_ResumeLink(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{BaseURL: "/me/"}), content.Default(), allAssets())

	link := doc.Find(`a[href="/me/resume.pdf"]`)
	require.Equal(t, 1, link.Length())
	_, download := link.Attr("download")
	assert.True(t, download)
	assert.Equal(t, "/me/static/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
}

func TestRender_SkillsJoined(t *testing.T) {
	p := content.Default()
	p.Skills = []content.SkillGroup{{Category: "Languages", Skills: []string{"Go", "SQL", "Rust"}}}

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	assert.Equal(t, "Go • SQL • Rust", doc.Find("#skills .skill__items").Text())
}

func TestRender_MissingProfileShowsPlaceholder(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), Assets{Resume: true})

	assert.Equal(t, 0, doc.Find(".portrait img").Length())
	ph := doc.Find(".portrait__photo--missing")
	require.Equal(t, 1, ph.Length())
	assert.Equal(t, "Abhiram Gaddam", ph.AttrOr("aria-label", ""))
	assert.Equal(t, "AG", strings.TrimSpace(ph.Text()))
}

func TestRender_Socials(t *testing.T) {
	p := content.Default()
	p.Socials = append(p.Socials, content.SocialLink{Label: "Broken", URL: "not a url"})

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	links := doc.Find(".socials a")
	require.Equal(t, 3, links.Length())
	links.Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "_blank", s.AttrOr("target", ""))
		assert.Equal(t, "noopener noreferrer", s.AttrOr("rel", ""))
		assert.NotEmpty(t, s.AttrOr("aria-label", ""))
		assert.NotEmpty(t, s.Find(".sr-only").Text())
	})
	assert.Equal(t, "LinkedIn", links.First().AttrOr("aria-label", ""))
}

func TestRender_ContactCard(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	card := doc.Find("#contact .contact-card")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "mailto:agaddam2@student.gsu.edu", card.Find("a.pill").AttrOr("href", ""))
	assert.Equal(t, 2, card.Find(".pill--static").Length())
}

func TestRender_MotionDriver(t *testing.T) {
	cfg := motion.DefaultConfig()

	on := renderDoc(t, newRenderer(t, Options{Motion: cfg}), content.Default(), allAssets())
	assert.Equal(t, 1, on.Find(`script[src="/wasm_exec.js"]`).Length())
	assert.Equal(t, len(cfg.Rings), on.Find(".portrait [data-ring]").Length())
	assert.Contains(t, on.Find("body").AttrOr("data-motion", ""), `"enabled":true`)

	off := renderDoc(t, newRenderer(t, Options{Motion: cfg}), content.Default(), Assets{Resume: true, Profile: true})
	assert.Equal(t, 0, off.Find("script").Length())

	cfg.Enabled = false
	disabled := renderDoc(t, newRenderer(t, Options{Motion: cfg}), content.Default(), allAssets())
	assert.Equal(t, 0, disabled.Find("script").Length())
}

func TestRender_AmbientAnimations(t *testing.T) {
	doc := renderDoc(t, newRenderer(t, Options{}), content.Default(), allAssets())

	assert.Equal(t, 1, doc.Find("h1#hero-title.hero__title").Length())
	assert.Equal(t, 1, doc.Find(".backdrop .backdrop__glow--amber").Length())
	assert.Equal(t, 1, doc.Find(".backdrop .backdrop__glow--emerald").Length())

	raw, err := fs.ReadFile(Static(), "site.css")
	require.NoError(t, err)
	css := string(raw)
	assert.Contains(t, css, "animation: hero-enter 0.5s")
	assert.Contains(t, css, "animation: drift-amber 12s ease-in-out infinite")
	assert.Contains(t, css, "animation: drift-emerald 14s ease-in-out infinite")
	for _, name := range []string{"hero-enter", "drift-amber", "drift-emerald"} {
		assert.Contains(t, css, "@keyframes "+name, name)
	}

	reduced := css[strings.Index(css, "@media (prefers-reduced-motion: reduce)"):]
	assert.Contains(t, reduced, ".hero__title, .backdrop__glow { animation: none; }")
}

func TestRender_IntroMarkdown(t *testing.T) {
	p := content.Default()
	p.Hero.Intro = "Ships **fast** <script>alert(1)</script>"

	doc := renderDoc(t, newRenderer(t, Options{}), p, allAssets())

	intro := doc.Find(".hero__intro")
	assert.Equal(t, "fast", intro.Find("strong").Text())
	assert.Equal(t, 0, intro.Find("script").Length())
}

func TestStatAssets(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, Assets{}, StatAssets(dir))
	assert.Equal(t, Assets{}, StatAssets(""))

	for _, name := range []string{ResumeFile, MotionFile} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	assert.Equal(t, Assets{Resume: true}, StatAssets(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, WasmExecFile), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ProfileFile), 0o755))
	assert.Equal(t, Assets{Resume: true, Motion: true}, StatAssets(dir))
}

func TestMailLink(t *testing.T) {
	ok := MailLink("me@example.com")
	assert.True(t, ok.OK)
	assert.Equal(t, "mailto:me@example.com", ok.Href)

	for _, addr := range []string{"not-an-email", "Me <me@example.com>", ""} {
		assert.False(t, MailLink(addr).OK, addr)
	}
}

func TestExternalLink(t *testing.T) {
	assert.True(t, ExternalLink("https://example.com/a", "l", "t").OK)
	assert.False(t, ExternalLink("ftp://example.com", "l", "t").OK)
	assert.False(t, ExternalLink("/relative", "l", "t").OK)
}
