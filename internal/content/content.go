// Package content defines the records a portfolio page is built from.
// Records are authored once, either as Go literals or a YAML file, and are
// never mutated after loading.
package content

// Section anchors. Each one is the id of a page section and the target of
// a top navigation link.
const (
	SectionProjects     = "projects"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionPublications = "publications"
	SectionEducation    = "education"
)

// Sections lists the anchors in page order.
var Sections = []string{
	SectionProjects,
	SectionExperience,
	SectionSkills,
	SectionPublications,
	SectionEducation,
}

// Page is the composition root of the portfolio.
type Page struct {
	Owner    string             `yaml:"owner" validate:"required"`
	Title    string             `yaml:"title"`
	Hero     Hero               `yaml:"hero"`
	Headings map[string]Heading `yaml:"headings" validate:"dive,keys,oneof=projects experience skills publications education,endkeys"`

	Projects     []Project     `yaml:"projects" validate:"dive"`
	Experience   []Role        `yaml:"experience" validate:"dive"`
	Skills       []SkillGroup  `yaml:"skills" validate:"dive"`
	Publications []Publication `yaml:"publications" validate:"dive"`
	Education    []Education   `yaml:"education" validate:"dive"`

	Contact Contact      `yaml:"contact"`
	Socials []SocialLink `yaml:"socials" validate:"dive"`
	Footer  string       `yaml:"footer"`
}

// Heading overrides the title of a section and gives it a subtitle.
type Heading struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Greeting string `yaml:"greeting" validate:"required"`
	// Intro is markdown.
	Intro       string `yaml:"intro"`
	Email       string `yaml:"email" validate:"omitempty,email"`
	ResumeLabel string `yaml:"resume_label"`
	ProfileAlt  string `yaml:"profile_alt"`
}

// Project is one project card. Bullets render in order.
type Project struct {
	Title   string   `yaml:"title" validate:"required"`
	Summary string   `yaml:"summary"`
	Bullets []string `yaml:"bullets" validate:"min=1,dive,required"`
	Tech    string   `yaml:"tech"`
}

// Role is one position. Roles render in the order given; callers sort.
type Role struct {
	Org    string   `yaml:"org" validate:"required"`
	Title  string   `yaml:"title" validate:"required"`
	Period string   `yaml:"period"`
	Points []string `yaml:"points" validate:"dive,required"`
}

// SkillGroup is a category of skills shown on one line.
type SkillGroup struct {
	Category string   `yaml:"category" validate:"required"`
	Icon     string   `yaml:"icon"`
	Skills   []string `yaml:"skills" validate:"min=1,dive,required"`
}

// Publication is an article with an absolute http(s) link.
type Publication struct {
	Title string `yaml:"title" validate:"required"`
	Venue string `yaml:"venue"`
	Date  string `yaml:"date"`
	URL   string `yaml:"url" validate:"required"`
}

// Education is one degree with its awards.
type Education struct {
	Institution string  `yaml:"institution" validate:"required"`
	Degree      string  `yaml:"degree" validate:"required"`
	Detail      string  `yaml:"detail"`
	Awards      []Award `yaml:"awards" validate:"dive"`
}

// Award is a recognition listed under a degree.
type Award struct {
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon"`
}

// Contact is shown in the footer card. Phone is display only.
type Contact struct {
	Email    string `yaml:"email" validate:"omitempty,email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

// SocialLink is one icon of the floating social bar.
type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url" validate:"required"`
}

// Heading returns the heading configured for a section anchor.
func (p *Page) Heading(section string) Heading {
	return p.Headings[section]
}
