package catalog

import (
	"net/url"
	"strings"

	"github.com/asherpoirier/website/internal/models"
)

const (
	DefaultBillingURL = "https://your-whmcs-domain.com"
	DefaultSupportURL = "https://t.me/customcloudtv"

	logoURL = "https://customer-assets.emergentagent.com/job_6ba45c1d-d99b-48ed-93f3-1f3a2b9f4763/artifacts/ppgulcfs_ChatGPT%20Image%20Nov%206%2C%202025%2C%2012_54_38%20AM.png"
)

// CartURL returns the WHMCS "add to cart" URL for product pid.
func CartURL(billingURL, pid string) string {
	q := url.Values{}
	q.Set("a", "add")
	q.Set("pid", pid)
	return strings.TrimRight(billingURL, "/") + "/cart.php?" + q.Encode()
}

// Default builds the stock Flux IPTV catalog.
func Default(billingURL, supportURL string) (*Catalog, error) {
	return New(DefaultContent(billingURL, supportURL))
}

func DefaultContent(billingURL, supportURL string) Content {
	if billingURL == "" {
		billingURL = DefaultBillingURL
	}
	if supportURL == "" {
		supportURL = DefaultSupportURL
	}

	return Content{
		Brand: models.Brand{
			Name:      "Flux IPTV",
			LogoURL:   logoURL,
			Tagline:   "Premium IPTV service delivering unlimited entertainment worldwide.",
			Copyright: "© 2025 Flux IPTV. All rights reserved.",
		},
		Plans: []models.Plan{
			{ID: 1, Name: "1 Month", Price: 10, Duration: "month", CheckoutURL: CartURL(billingURL, "1")},
			{ID: 2, Name: "3 Months", Price: 25, Duration: "3 months", CheckoutURL: CartURL(billingURL, "2")},
			{ID: 3, Name: "6 Months", Price: 45, Duration: "6 months", Popular: true, CheckoutURL: CartURL(billingURL, "3")},
			{ID: 4, Name: "12 Months", Price: 80, Duration: "year", Savings: "Save $40", CheckoutURL: CartURL(billingURL, "4")},
		},
		Perks: []string{
			"10,000+ Live Channels",
			"20,000+ Movies",
			"5,000+ TV Series",
			"HD & 4K Quality",
			"99.9% Uptime",
			"24/7 Support",
		},
		Features: []models.Feature{
			{ID: 1, Title: "10,000+ Live Channels", Description: "Access thousands of channels from around the world in HD and 4K quality", Icon: models.IconTv},
			{ID: 2, Title: "20,000+ Movies", Description: "Extensive library of movies across all genres, updated regularly", Icon: models.IconFilm},
			{ID: 3, Title: "5,000+ TV Series", Description: "Binge-watch your favorite series with complete seasons available", Icon: models.IconClapperboard},
			{ID: 4, Title: "99.9% Uptime", Description: "Reliable service with minimal downtime and maximum stability", Icon: models.IconShield},
			{ID: 5, Title: "Wide Device Compatibility", Description: "Works on Smart TV, Android, iOS, Fire Stick, MAG, and more", Icon: models.IconSmartphone},
			{ID: 6, Title: "Fast Zap Technology", Description: "Lightning-fast channel switching for seamless viewing experience", Icon: models.IconZap},
		},
		Testimonials: []models.Testimonial{
			{ID: 1, Name: "Michael Rodriguez", Role: "Sports Enthusiast", Rating: 5,
				Content: "Best IPTV service I've ever used! The channel selection is incredible and the streaming quality is always top-notch. Haven't experienced any buffering issues."},
			{ID: 2, Name: "Sarah Johnson", Role: "Movie Lover", Rating: 5,
				Content: "The movie library is massive! I can always find what I want to watch. The 4K quality is stunning and the service is super reliable."},
			{ID: 3, Name: "David Chen", Role: "Family User", Rating: 5,
				Content: "Perfect for my whole family. Everyone can watch what they love on different devices. The support team is also very responsive on Telegram."},
			{ID: 4, Name: "Emma Williams", Role: "International Viewer", Rating: 5,
				Content: "Finally found a service with channels from my home country! The variety is amazing and the fast zap feature makes switching channels so smooth."},
		},
		FAQs: []models.FAQ{
			{ID: 1, Question: "What devices are compatible with Flux IPTV?",
				Answer: "Flux IPTV works on a wide range of devices including Smart TVs (Samsung, LG, Sony), Android devices, iOS (iPhone/iPad), Amazon Fire Stick, MAG boxes, Android TV boxes, and most streaming devices. You can also use it on Windows and Mac computers."},
			{ID: 2, Question: "How does the 1-day free trial work?",
				Answer: "Simply sign up for our free trial and you'll get 24 hours of full access to all channels, movies, and TV series. No credit card required for the trial. After the trial ends, you can choose a subscription plan that works best for you."},
			{ID: 3, Question: "What internet speed do I need?",
				Answer: "For standard definition (SD), we recommend at least 5 Mbps. For HD quality, 10 Mbps is recommended, and for 4K content, you'll need at least 25 Mbps for the best experience."},
			{ID: 4, Question: "Can I use my subscription on multiple devices?",
				Answer: "Yes! Your subscription allows you to use the service on multiple devices. However, the number of simultaneous connections depends on your plan. Contact us for more details on multi-device options."},
			{ID: 5, Question: "How do I get support if I have issues?",
				Answer: "Our support team is available via Telegram for quick assistance. Simply click the support button on our website to connect with us. We typically respond within minutes during business hours."},
			{ID: 6, Question: "Do you offer refunds?",
				Answer: "We offer a satisfaction guarantee. If you're not happy with the service within the first 7 days, contact our support team and we'll process a refund. We recommend trying our free trial first to ensure the service meets your needs."},
			{ID: 7, Question: "Is the service legal?",
				Answer: "Flux IPTV operates as a legitimate streaming service provider. We work with content providers to deliver quality entertainment. However, we recommend checking your local laws and regulations regarding IPTV services."},
			{ID: 8, Question: "How often is content updated?",
				Answer: "Our content library is updated daily with new movies, TV series episodes, and live channels. We constantly expand our offerings to provide the latest entertainment options."},
		},
		Stats: []string{
			"10,000+ Channels",
			"20,000+ Movies",
			"5,000+ TV Series",
			"99.9% Uptime",
		},
		Links: models.Links{
			Support:   supportURL,
			FreeTrial: CartURL(billingURL, "trial"),
		},
	}
}
