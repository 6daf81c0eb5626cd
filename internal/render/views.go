package render

import (
	"html"
	"html/template"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zachkp/folio/internal/content"
)

// Files expected in the assets directory, served from the site root.
const (
	ResumeFile   = "resume.pdf"
	ProfileFile  = "profile.jpg"
	MotionFile   = "motion.wasm"
	WasmExecFile = "wasm_exec.js"
)

// Assets records which optional files are available. Missing files
// degrade: the résumé pill goes inert, the portrait shows its alt text and
// the page runs without motion.
type Assets struct {
	Resume  bool
	Profile bool
	Motion  bool
}

// StatAssets checks dir for the optional asset files.
func StatAssets(dir string) Assets {
	exists := func(name string) bool {
		if dir == "" {
			return false
		}
		info, err := os.Stat(filepath.Join(dir, name))
		return err == nil && info.Mode().IsRegular()
	}
	return Assets{
		Resume:  exists(ResumeFile),
		Profile: exists(ProfileFile),
		Motion:  exists(MotionFile) && exists(WasmExecFile),
	}
}

// PageView is the data handed to the page template.
type PageView struct {
	Page     *content.Page
	Title    string
	Base     string
	Intro    template.HTML
	Nav      []NavLink
	Sections []SectionView
	Rings    []string
	Assets   Assets
	// Motion is the JSON motion config handed to the browser driver.
	Motion   string
	MotionOn bool
}

// Initials is the portrait placeholder shown when the photo is missing.
func (v *PageView) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(v.Page.Owner) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// NavLink is one in-page anchor of the top bar.
type NavLink struct {
	Href  string
	Label string
}

// CardView is the generic bordered panel. Fill stretches the card to the
// height of its grid row.
type CardView struct {
	Fill  bool
	Class string
	Body  template.HTML
}

// NewCard wraps body in a card.
func NewCard(fill bool, class string, body template.HTML) CardView {
	return CardView{Fill: fill, Class: class, Body: body}
}

// Reveal delays, in seconds. A section body trails its heading slightly.
const (
	headRevealDelay = 0
	bodyRevealDelay = 0.05
)

// SectionView is a titled anchor region. The heading and the body are
// separate reveal targets.
type SectionView struct {
	ID       string
	Title    string
	Subtitle string
	Body     template.HTML
	Head     RevealView
	Content  RevealView
}

// RevealView marks an element for reveal-on-scroll.
type RevealView struct {
	ID    string
	Delay float64
}

// NewSection builds a section whose reveal targets are keyed by id.
func NewSection(id, title, subtitle string, body template.HTML) SectionView {
	return SectionView{
		ID:       id,
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		Head:     RevealView{ID: id + "-head", Delay: headRevealDelay},
		Content:  RevealView{ID: id + "-body", Delay: bodyRevealDelay},
	}
}

// LinkView is a link or, when OK is false, inert text in its place.
type LinkView struct {
	Href  string
	Text  string
	Label string
	Icon  string
	OK    bool
}

// HrefAttr is the complete href attribute of a vetted link. The URL is
// HTML-escaped but otherwise written as given, so the browser sees exactly
// the authored destination. It is empty for inert links.
func (l LinkView) HrefAttr() template.HTMLAttr {
	if !l.OK {
		return ""
	}
	return template.HTMLAttr(`href="` + html.EscapeString(l.Href) + `"`)
}

// ExternalLink opens raw in a new browsing context. Anything other than an
// absolute http(s) URL renders inert.
func ExternalLink(raw, label, text string) LinkView {
	l := LinkView{Text: text, Label: label, Icon: "external"}
	if content.IsExternalURL(raw) {
		l.Href, l.OK = raw, true
	}
	return l
}

// MailLink is a mailto pill. A malformed address renders as plain text.
func MailLink(addr string) LinkView {
	l := LinkView{Text: addr, Label: "Email " + addr, Icon: "mail"}
	if a, err := mail.ParseAddress(addr); err == nil && a.Name == "" && a.Address == addr {
		l.Href, l.OK = "mailto:"+addr, true
	}
	return l
}

// PlainLink is display-only text styled as a pill.
func PlainLink(text, icon string) LinkView {
	return LinkView{Text: text, Icon: icon}
}

// JoinSkills joins skill names in insertion order.
func JoinSkills(skills []string) string {
	return strings.Join(skills, " • ")
}
