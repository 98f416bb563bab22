package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/asherpoirier/website/internal/models"
)

var ErrInvalid = errors.New("invalid catalog")

// Content is the raw material a Catalog is built from.
type Content struct {
	Brand        models.Brand
	Plans        []models.Plan
	Perks        []string
	Features     []models.Feature
	Testimonials []models.Testimonial
	FAQs         []models.FAQ
	Stats        []string
	Links        models.Links
}

// Catalog is the immutable set of records shown on the page. It is built once
// at startup and every accessor returns a copy.
type Catalog struct {
	content Content
}

// New validates c and returns a Catalog holding a private copy of it.
func New(c Content) (*Catalog, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	return &Catalog{content: Content{
		Brand:        c.Brand,
		Plans:        slices.Clone(c.Plans),
		Perks:        slices.Clone(c.Perks),
		Features:     slices.Clone(c.Features),
		Testimonials: slices.Clone(c.Testimonials),
		FAQs:         slices.Clone(c.FAQs),
		Stats:        slices.Clone(c.Stats),
		Links:        c.Links,
	}}, nil
}

func (c *Catalog) Brand() models.Brand { return c.content.Brand }

func (c *Catalog) Plans() []models.Plan { return slices.Clone(c.content.Plans) }

func (c *Catalog) Perks() []string { return slices.Clone(c.content.Perks) }

func (c *Catalog) Features() []models.Feature { return slices.Clone(c.content.Features) }

func (c *Catalog) Testimonials() []models.Testimonial {
	return slices.Clone(c.content.Testimonials)
}

func (c *Catalog) FAQs() []models.FAQ { return slices.Clone(c.content.FAQs) }

func (c *Catalog) Stats() []string { return slices.Clone(c.content.Stats) }

func (c *Catalog) Links() models.Links { return c.content.Links }

func (c *Catalog) Plan(id int) (models.Plan, bool) {
	for _, p := range c.content.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plan{}, false
}

func (c *Catalog) HasFAQ(id int) bool {
	return slices.ContainsFunc(c.content.FAQs, func(f models.FAQ) bool { return f.ID == id })
}

func validate(c Content) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	seen := make(map[int]bool)
	for _, p := range c.Plans {
		if p.ID <= 0 || seen[p.ID] {
			fail("plan id %d is not a unique positive integer", p.ID)
		}
		seen[p.ID] = true
		if p.Price <= 0 {
			fail("plan %d price %v must be positive", p.ID, p.Price)
		}
		if !isAbsoluteURL(p.CheckoutURL) {
			fail("plan %d checkout url %q is not absolute", p.ID, p.CheckoutURL)
		}
	}

	clear(seen)
	for _, f := range c.Features {
		if f.ID <= 0 || seen[f.ID] {
			fail("feature id %d is not a unique positive integer", f.ID)
		}
		seen[f.ID] = true
		if !f.Icon.Valid() {
			errs = append(errs, fmt.Errorf("%w: feature %d: %w %v", ErrInvalid, f.ID, models.ErrUnknownIcon, f.Icon))
		}
	}

	clear(seen)
	for _, t := range c.Testimonials {
		if t.ID <= 0 || seen[t.ID] {
			fail("testimonial id %d is not a unique positive integer", t.ID)
		}
		seen[t.ID] = true
		if t.Rating < 1 || t.Rating > 5 {
			fail("testimonial %d rating %d is outside [1,5]", t.ID, t.Rating)
		}
	}

	clear(seen)
	for _, f := range c.FAQs {
		if f.ID <= 0 || seen[f.ID] {
			fail("faq id %d is not a unique positive integer", f.ID)
		}
		seen[f.ID] = true
	}

	if !isAbsoluteURL(c.Links.Support) {
		fail("support url %q is not absolute", c.Links.Support)
	}
	if !isAbsoluteURL(c.Links.FreeTrial) {
		fail("free trial url %q is not absolute", c.Links.FreeTrial)
	}

	return errors.Join(errs...)
}

func isAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
