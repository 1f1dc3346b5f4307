package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/siteideas/website-ideas/internal/idea"
)

// Generator turns validated idea text into an ordered list of sections.
// Implementations must return at least one section, with unique ids,
// strictly increasing order starting at 1 and non-empty content.
type Generator interface {
	Generate(ctx context.Context, ideaText string) ([]idea.Section, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, ideaText string) ([]idea.Section, error)

func (f GeneratorFunc) Generate(ctx context.Context, ideaText string) ([]idea.Section, error) {
	return f(ctx, ideaText)
}

// IDFunc returns a new section identifier on every call.
type IDFunc func() string

// NewID is the default IDFunc.
func NewID() string { return uuid.NewString() }

// Template is one entry of the section catalog. Format receives the
// lower-cased idea text through a single %s verb and must contain no other
// verbs; write a literal percent sign as %%.
type Template struct {
	Name   string
	Format string
}

// DefaultTemplates is the catalog used by the template generator, in
// presentation order.
var DefaultTemplates = []Template{
	{
		Name:   "Hero",
		Format: "Welcome to our %s. We provide exceptional services and products that meet your needs. Discover what makes us unique and why you should choose us for your requirements.",
	},
	{
		Name:   "About",
		Format: "Learn more about our %s. We are passionate about delivering quality and excellence in everything we do. Our team is dedicated to providing the best experience for our customers.",
	},
	{
		Name:   "Contact",
		Format: "Get in touch with us to learn more about our %s. We're here to help and answer any questions you may have. Contact us today to get started.",
	},
}

// TemplateGenerator fills a fixed template catalog with the idea text.
type TemplateGenerator struct {
	templates []Template
	newID     IDFunc
}

// NewTemplateGenerator returns a generator over templates. A nil newID
// falls back to NewID and an empty catalog to DefaultTemplates.
func NewTemplateGenerator(templates []Template, newID IDFunc) *TemplateGenerator {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	if newID == nil {
		newID = NewID
	}
	return &TemplateGenerator{templates: templates, newID: newID}
}

func (g *TemplateGenerator) Generate(_ context.Context, ideaText string) ([]idea.Section, error) {
	lower := strings.ToLower(ideaText)
	out := make([]idea.Section, 0, len(g.templates))
	for i, t := range g.templates {
		if err := checkFormat(t.Format); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		out = append(out, idea.Section{
			ID:      g.newID(),
			Name:    t.Name,
			Content: fmt.Sprintf(t.Format, lower),
			Order:   i + 1,
		})
	}
	return out, nil
}

// checkFormat accepts a format with exactly one %s and only %% otherwise.
func checkFormat(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return fmt.Errorf("format ends with a bare %%")
		}
		i++
		switch format[i] {
		case '%':
		case 's':
			verbs++
		default:
			return fmt.Errorf("unsupported verb %%%c in format", format[i])
		}
	}
	if verbs != 1 {
		return fmt.Errorf("format needs exactly one %%s, found %d", verbs)
	}
	return nil
}
