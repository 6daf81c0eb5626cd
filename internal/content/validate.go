package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists every problem found in a page.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content: %s", strings.Join(e.Problems, "; "))
}

// Validate checks a page against the content invariants: required fields,
// non-empty bullet lists, unique project titles and absolute external
// links. It returns a *ValidationError, or nil.
func (p *Page) Validate() error {
	var problems []string

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating content: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		key := strings.ToLower(strings.TrimSpace(proj.Title))
		if key == "" {
			continue
		}
		if seen[key] {
			problems = append(problems, fmt.Sprintf("Page.Projects[%d].Title: duplicate title %q", i, proj.Title))
		}
		seen[key] = true
	}

	for i, pub := range p.Publications {
		if pub.URL != "" && !IsExternalURL(pub.URL) {
			problems = append(problems, fmt.Sprintf("Page.Publications[%d].URL: %q is not an absolute http(s) link", i, pub.URL))
		}
	}
	for i, s := range p.Socials {
		if s.URL != "" && !IsExternalURL(s.URL) {
			problems = append(problems, fmt.Sprintf("Page.Socials[%d].URL: %q is not an absolute http(s) link", i, s.URL))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s: needs at least %s entries", fe.Namespace(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: %q is not a section", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
}

// IsExternalURL reports whether raw is an absolute http or https link with
// a host.
func IsExternalURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
