package page

import (
	"html/template"
	"log/slog"
	"slices"

	"github.com/microcosm-cc/bluemonday"

	"github.com/asherpoirier/website/internal/catalog"
	"github.com/asherpoirier/website/internal/models"
)

// NoPlan clears the hovered plan. Plan ids are always positive.
const NoPlan = 0

var answerPolicy = bluemonday.UGCPolicy()

// Renderer binds a catalog to a Document and dispatches the page actions.
// It holds the transient view state of one visitor and is not safe for
// concurrent use.
type Renderer struct {
	catalog  *catalog.Catalog
	nav      Navigator
	hovered  int
	expanded map[int]bool
}

func NewRenderer(c *catalog.Catalog, nav Navigator) *Renderer {
	return &Renderer{
		catalog:  c,
		nav:      nav,
		expanded: make(map[int]bool),
	}
}

// Render builds the document for the current catalog and view state.
func (r *Renderer) Render() Document {
	brand := r.catalog.Brand()
	links := r.catalog.Links()
	perks := r.catalog.Perks()

	doc := Document{
		Brand:      brand,
		Nav:        navLinks("Reviews"),
		FooterNav:  navLinks("Testimonials"),
		Sections:   sections(brand.Name),
		Stats:      r.catalog.Stats(),
		TrialURL:   links.FreeTrial,
		SupportURL: links.Support,
	}

	for _, f := range r.catalog.Features() {
		glyph, _ := Glyph(f.Icon)
		doc.Features = append(doc.Features, FeatureCard{
			ID:          f.ID,
			Title:       f.Title,
			Description: f.Description,
			Glyph:       glyph,
		})
	}

	for _, p := range r.catalog.Plans() {
		doc.Plans = append(doc.Plans, PlanCard{
			ID:          p.ID,
			Name:        p.Name,
			Price:       formatPrice(p.Price),
			Duration:    p.Duration,
			Popular:     p.Popular,
			Savings:     p.Savings,
			Hovered:     p.ID == r.hovered,
			Perks:       slices.Clone(perks),
			CheckoutURL: p.CheckoutURL,
		})
	}

	for _, t := range r.catalog.Testimonials() {
		doc.Testimonials = append(doc.Testimonials, TestimonialCard{
			ID:      t.ID,
			Name:    t.Name,
			Role:    t.Role,
			Content: t.Content,
			Rating:  t.Rating,
			Stars:   stars(t.Rating),
		})
	}

	for _, f := range r.catalog.FAQs() {
		doc.FAQs = append(doc.FAQs, FAQItem{
			ID:       f.ID,
			Question: f.Question,
			Answer:   template.HTML(answerPolicy.Sanitize(f.Answer)),
			Expanded: r.expanded[f.ID],
		})
	}

	return doc
}

// OnHoverPlan marks id as the hovered plan, replacing any previous one.
// NoPlan clears it and ids outside the catalog are ignored.
func (r *Renderer) OnHoverPlan(id int) {
	if id == NoPlan {
		r.hovered = NoPlan
		return
	}
	if _, ok := r.catalog.Plan(id); !ok {
		return
	}
	r.hovered = id
}

func (r *Renderer) HoveredPlan() (int, bool) {
	return r.hovered, r.hovered != NoPlan
}

func (r *Renderer) OnSelectFreeTrial() {
	r.open("free_trial", r.catalog.Links().FreeTrial)
}

// OnSubscribe opens the plan's checkout URL. plan must come from the catalog.
func (r *Renderer) OnSubscribe(plan models.Plan) {
	r.open("subscribe", plan.CheckoutURL)
}

func (r *Renderer) OnContactSupport() {
	r.open("support", r.catalog.Links().Support)
}

func (r *Renderer) open(action, target string) {
	if r.nav == nil {
		slog.Warn("No navigator configured", "action", action, "url", target)
		return
	}
	if err := r.nav.Open(target); err != nil {
		slog.Warn("Failed to open external URL", "action", action, "url", target, "error", err)
	}
}

// ScrollToSection resolves the section an in-page scroll should target.
// An unknown anchor reports false and has no other effect.
func (r *Renderer) ScrollToSection(anchor string) (Section, bool) {
	for _, s := range sections(r.catalog.Brand().Name) {
		if s.Anchor == anchor {
			return s, true
		}
	}
	return Section{}, false
}

// ToggleFAQ flips one accordion entry. Other entries keep their state.
func (r *Renderer) ToggleFAQ(id int) {
	if !r.catalog.HasFAQ(id) {
		return
	}
	if r.expanded[id] {
		delete(r.expanded, id)
		return
	}
	r.expanded[id] = true
}

func (r *Renderer) IsExpanded(id int) bool {
	return r.expanded[id]
}
