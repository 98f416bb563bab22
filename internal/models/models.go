package models

type Plan struct {
	ID          int
	Name        string
	Price       float64
	Duration    string
	Popular     bool
	Savings     string
	CheckoutURL string
}

type Feature struct {
	ID          int
	Title       string
	Description string
	Icon        Icon
}

type Testimonial struct {
	ID      int
	Name    string
	Role    string
	Content string
	Rating  int
}

type FAQ struct {
	ID       int
	Question string
	Answer   string
}

// Links are the two standalone outbound destinations of the page.
type Links struct {
	Support   string
	FreeTrial string
}

type Brand struct {
	Name      string
	LogoURL   string
	Tagline   string
	Copyright string
}
