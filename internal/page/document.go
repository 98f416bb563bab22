package page

import (
	"html/template"
	"strconv"

	"github.com/asherpoirier/website/internal/models"
)

// Section anchors.
const (
	AnchorFeatures     = "features"
	AnchorPricing      = "pricing"
	AnchorTestimonials = "testimonials"
	AnchorFAQ          = "faq"
)

type Document struct {
	Brand        models.Brand
	Nav          []NavLink
	FooterNav    []NavLink
	Sections     []Section
	Features     []FeatureCard
	Plans        []PlanCard
	Testimonials []TestimonialCard
	FAQs         []FAQItem
	Stats        []string
	TrialURL     string
	SupportURL   string
}

type NavLink struct {
	Anchor string
	Label  string
}

// Href is the in-page link to the anchor.
func (n NavLink) Href() string {
	return "#" + n.Anchor
}

type Section struct {
	Anchor   string
	Title    string
	Subtitle string
}

type FeatureCard struct {
	ID          int
	Title       string
	Description string
	Glyph       template.HTML
}

type PlanCard struct {
	ID          int
	Name        string
	Price       string
	Duration    string
	Popular     bool
	Savings     string
	Hovered     bool
	Perks       []string
	CheckoutURL string
}

type TestimonialCard struct {
	ID      int
	Name    string
	Role    string
	Content string
	Rating  int
	// Stars has exactly Rating entries, one per filled glyph.
	Stars []int
}

type FAQItem struct {
	ID       int
	Question string
	Answer   template.HTML
	Expanded bool
}

// Section returns the section with the given anchor.
func (d Document) Section(anchor string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Anchor == anchor {
			return s, true
		}
	}
	return Section{}, false
}

// SectionNamed is the template form of Section; nil when absent.
func (d Document) SectionNamed(anchor string) *Section {
	if s, ok := d.Section(anchor); ok {
		return &s
	}
	return nil
}

func sections(brand string) []Section {
	return []Section{
		{AnchorFeatures, "Why Choose " + brand + "?", "Industry-leading features that deliver the best streaming experience"},
		{AnchorPricing, "Simple, Transparent Pricing", "Choose the plan that fits your needs. All plans include full access to our entire content library."},
		{AnchorTestimonials, "Trusted by Thousands", "See what our customers have to say about their experience"},
		{AnchorFAQ, "Frequently Asked Questions", "Everything you need to know about " + brand},
	}
}

func navLinks(testimonialsLabel string) []NavLink {
	return []NavLink{
		{AnchorFeatures, "Features"},
		{AnchorPricing, "Pricing"},
		{AnchorTestimonials, testimonialsLabel},
		{AnchorFAQ, "FAQ"},
	}
}

func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return "$" + strconv.FormatInt(int64(p), 10)
	}
	return "$" + strconv.FormatFloat(p, 'f', 2, 64)
}

func stars(rating int) []int {
	s := make([]int, rating)
	for i := range s {
		s[i] = i + 1
	}
	return s
}
