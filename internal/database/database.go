package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asherpoirier/website/internal/catalog"
	"github.com/asherpoirier/website/internal/models"
)

// Database is a read-only catalog source. It is queried once at startup.
type Database interface {
	Close()
	LoadCatalog(ctx context.Context, base catalog.Content) (*catalog.Catalog, error)
}

// querier is the part of *pgxpool.Pool the loader uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

type database struct {
	db querier
}

func NewDatabase(ctx context.Context, dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &database{db: pool}, nil
}

func (d *database) Close() {
	d.db.Close()
}

// LoadCatalog overlays the stored lists and links on base. A table with no
// rows keeps the base list.
func (d *database) LoadCatalog(ctx context.Context, base catalog.Content) (*catalog.Catalog, error) {
	plans, err := d.getPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	features, err := d.getFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	testimonials, err := d.getTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	faqs, err := d.getFAQs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load faqs: %w", err)
	}
	links, err := d.getLinks(ctx, base.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to load links: %w", err)
	}

	return catalog.New(merge(base, plans, features, testimonials, faqs, links))
}

func merge(base catalog.Content, plans []models.Plan, features []models.Feature, testimonials []models.Testimonial, faqs []models.FAQ, links models.Links) catalog.Content {
	if len(plans) > 0 {
		base.Plans = plans
	}
	if len(features) > 0 {
		base.Features = features
	}
	if len(testimonials) > 0 {
		base.Testimonials = testimonials
	}
	if len(faqs) > 0 {
		base.FAQs = faqs
	}
	base.Links = links
	return base
}

func (d *database) getPlans(ctx context.Context) ([]models.Plan, error) {
	rows, err := d.db.Query(ctx, `SELECT id, name, price, duration, popular, COALESCE(savings, ''), checkout_url FROM plans ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, &p.Popular, &p.Savings, &p.CheckoutURL); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (d *database) getFeatures(ctx context.Context) ([]models.Feature, error) {
	rows, err := d.db.Query(ctx, `SELECT id, title, description, icon FROM features ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []models.Feature
	for rows.Next() {
		var f models.Feature
		var icon string
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &icon); err != nil {
			return nil, err
		}
		if f.Icon, err = models.ParseIcon(icon); err != nil {
			return nil, fmt.Errorf("feature %d: %w", f.ID, err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (d *database) getTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := d.db.Query(ctx, `SELECT id, name, role, content, rating FROM testimonials ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (d *database) getFAQs(ctx context.Context) ([]models.FAQ, error) {
	rows, err := d.db.Query(ctx, `SELECT id, question, answer FROM faqs ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (d *database) getLinks(ctx context.Context, links models.Links) (models.Links, error) {
	rows, err := d.db.Query(ctx, `SELECT key, value FROM settings WHERE key IN ('support_url', 'free_trial_url')`)
	if err != nil {
		return links, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return links, err
		}
		if value == "" {
			continue
		}
		switch key {
		case "support_url":
			links.Support = value
		case "free_trial_url":
			links.FreeTrial = value
		}
	}
	return links, rows.Err()
}
