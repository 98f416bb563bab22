package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/asherpoirier/website/internal/models"
)

func mustNew(t *testing.T, content Content) *Catalog {
	t.Helper()
	c, err := New(content)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default("", "")
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}

	if len(c.Plans()) != 4 {
		t.Errorf("expected 4 plans, got %d", len(c.Plans()))
	}
	if len(c.Features()) != 6 {
		t.Errorf("expected 6 features, got %d", len(c.Features()))
	}
	if len(c.Testimonials()) != 4 {
		t.Errorf("expected 4 testimonials, got %d", len(c.Testimonials()))
	}
	if len(c.FAQs()) != 8 {
		t.Errorf("expected 8 faqs, got %d", len(c.FAQs()))
	}

	popular := 0
	for _, p := range c.Plans() {
		if p.Popular {
			popular++
			if p.ID != 3 {
				t.Errorf("expected plan 3 to be popular, got plan %d", p.ID)
			}
		}
	}
	if popular != 1 {
		t.Errorf("expected exactly 1 popular plan, got %d", popular)
	}
}

func TestDefaultCatalogURLs(t *testing.T) {
	c, err := Default("https://billing.example.com/", "https://t.me/example")
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}

	p, ok := c.Plan(2)
	if !ok {
		t.Fatal("expected plan 2 to exist")
	}
	if p.CheckoutURL != "https://billing.example.com/cart.php?a=add&pid=2" {
		t.Errorf("unexpected checkout url %q", p.CheckoutURL)
	}

	links := c.Links()
	if links.FreeTrial != "https://billing.example.com/cart.php?a=add&pid=trial" {
		t.Errorf("unexpected free trial url %q", links.FreeTrial)
	}
	if links.Support != "https://t.me/example" {
		t.Errorf("unexpected support url %q", links.Support)
	}
}

func TestDefaultContentFallbacks(t *testing.T) {
	content := DefaultContent("", "")
	if content.Links.Support != DefaultSupportURL {
		t.Errorf("expected default support url, got %q", content.Links.Support)
	}
	if !strings.HasPrefix(content.Links.FreeTrial, DefaultBillingURL) {
		t.Errorf("expected free trial url on default billing host, got %q", content.Links.FreeTrial)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := mustNew(t, DefaultContent("", ""))

	plans := c.Plans()
	plans[0].CheckoutURL = "https://evil.example.com"
	plans[0].Name = "changed"

	p, _ := c.Plan(1)
	if p.Name != "1 Month" {
		t.Errorf("catalog was mutated through accessor: %q", p.Name)
	}

	faqs := c.FAQs()
	faqs[0] = models.FAQ{ID: 99}
	if c.HasFAQ(99) || !c.HasFAQ(1) {
		t.Error("catalog faqs were mutated through accessor")
	}
}

func TestNewCopiesInput(t *testing.T) {
	content := DefaultContent("", "")
	c := mustNew(t, content)

	content.Plans[0].Price = 1000
	p, _ := c.Plan(1)
	if p.Price != 10 {
		t.Errorf("expected price 10, got %v", p.Price)
	}
}

func TestPlanLookup(t *testing.T) {
	c := mustNew(t, DefaultContent("", ""))

	if _, ok := c.Plan(42); ok {
		t.Error("expected unknown plan lookup to fail")
	}
	if !c.HasFAQ(8) {
		t.Error("expected faq 8 to exist")
	}
	if c.HasFAQ(0) {
		t.Error("expected faq 0 not to exist")
	}
}

func TestNewRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Content)
		want   string
	}{
		{"duplicate plan id", func(c *Content) { c.Plans[1].ID = c.Plans[0].ID }, "plan id 1"},
		{"non positive plan id", func(c *Content) { c.Plans[0].ID = 0 }, "plan id 0"},
		{"zero price", func(c *Content) { c.Plans[0].Price = 0 }, "price"},
		{"relative checkout url", func(c *Content) { c.Plans[0].CheckoutURL = "/cart.php?a=add" }, "checkout url"},
		{"empty checkout url", func(c *Content) { c.Plans[3].CheckoutURL = "" }, "checkout url"},
		{"unknown icon", func(c *Content) { c.Features[2].Icon = models.Icon(42) }, "unknown icon"},
		{"duplicate feature id", func(c *Content) { c.Features[5].ID = 1 }, "feature id 1"},
		{"rating too high", func(c *Content) { c.Testimonials[0].Rating = 6 }, "rating 6"},
		{"rating too low", func(c *Content) { c.Testimonials[0].Rating = 0 }, "rating 0"},
		{"duplicate testimonial id", func(c *Content) { c.Testimonials[3].ID = 2 }, "testimonial id 2"},
		{"duplicate faq id", func(c *Content) { c.FAQs[7].ID = 1 }, "faq id 1"},
		{"empty support url", func(c *Content) { c.Links.Support = "" }, "support url"},
		{"relative free trial url", func(c *Content) { c.Links.FreeTrial = "trial" }, "free trial url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := DefaultContent("", "")
			tt.mutate(&content)

			_, err := New(content)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to mention %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestNewUnknownIconWrapsSentinel(t *testing.T) {
	content := DefaultContent("", "")
	content.Features[0].Icon = 0

	_, err := New(content)
	if !errors.Is(err, models.ErrUnknownIcon) {
		t.Errorf("expected ErrUnknownIcon, got %v", err)
	}
}

func TestNewReportsEveryDefect(t *testing.T) {
	content := DefaultContent("", "")
	content.Plans[0].Price = -1
	content.Testimonials[1].Rating = 9

	_, err := New(content)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "price") || !strings.Contains(msg, "rating 9") {
		t.Errorf("expected both defects to be reported, got %q", msg)
	}
}

func TestPopularIsNotEnforced(t *testing.T) {
	content := DefaultContent("", "")
	for i := range content.Plans {
		content.Plans[i].Popular = true
	}
	if _, err := New(content); err != nil {
		t.Errorf("expected several popular plans to be accepted, got %v", err)
	}

	for i := range content.Plans {
		content.Plans[i].Popular = false
	}
	if _, err := New(content); err != nil {
		t.Errorf("expected no popular plan to be accepted, got %v", err)
	}
}

func TestNewRejectsEmptyContent(t *testing.T) {
	if _, err := New(Content{}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for empty content, got %v", err)
	}
}

func TestCartURL(t *testing.T) {
	got := CartURL("https://billing.example.com//", "7")
	if got != "https://billing.example.com/cart.php?a=add&pid=7" {
		t.Errorf("unexpected cart url %q", got)
	}
}
