package catalog

import (
	"context"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
)

// Source says where a catalogue result came from, so the UI can show the
// "showing sample products" banner when not live.
type Source string

const (
	SourceLive     Source = "live"
	SourceSnapshot Source = "snapshot"
	SourceSample   Source = "sample"
)

// ProductResult is a catalogue read plus its provenance.
type ProductResult struct {
	Products []models.Product `json:"products"`
	Source   Source           `json:"source"`
}

// BlogResult is a blog read plus its provenance.
type BlogResult struct {
	Posts  []models.BlogPost `json:"posts"`
	Source Source            `json:"source"`
}

// Snapshotter stores the last successful live fetch and serves it back when
// the backend is unreachable. internal/snapshot provides the sqlite-backed
// implementation.
type Snapshotter interface {
	SaveProducts(products []models.Product) error
	LoadProducts() ([]models.Product, error)
	SaveBlogs(posts []models.BlogPost) error
	LoadBlogs() ([]models.BlogPost, error)
}

// Provider is the degraded-mode data source: live → snapshot → sample.
// Reads never fail; they only degrade.
type Provider struct {
	backend *backend.Client
	snap    Snapshotter
}

// NewProvider wires a backend client and an optional snapshotter.
// Pass nil snap to skip the snapshot tier entirely.
func NewProvider(b *backend.Client, snap Snapshotter) *Provider {
	return &Provider{backend: b, snap: snap}
}

// Products reads the catalogue, falling through the tiers on failure.
func (p *Provider) Products(ctx context.Context) ProductResult {
	products, err := p.backend.Products(ctx)
	if err == nil {
		if p.snap != nil {
			if serr := p.snap.SaveProducts(products); serr != nil {
				logger.Warn("catalog: snapshot save failed", "error", serr)
			}
		}
		return ProductResult{Products: products, Source: SourceLive}
	}
	logger.Warn("catalog: live fetch failed, degrading", "error", err)

	if p.snap != nil {
		if cached, serr := p.snap.LoadProducts(); serr == nil && len(cached) > 0 {
			return ProductResult{Products: cached, Source: SourceSnapshot}
		}
	}

	return ProductResult{Products: SampleProducts(), Source: SourceSample}
}

// Blogs reads the posts through the same tiers. A blog failure is fully
// independent of a product failure — there is no shared failure domain.
func (p *Provider) Blogs(ctx context.Context) BlogResult {
	posts, err := p.backend.Blogs(ctx)
	if err == nil {
		if p.snap != nil {
			if serr := p.snap.SaveBlogs(posts); serr != nil {
				logger.Warn("catalog: blog snapshot save failed", "error", serr)
			}
		}
		return BlogResult{Posts: posts, Source: SourceLive}
	}
	logger.Warn("catalog: live blog fetch failed, degrading", "error", err)

	if p.snap != nil {
		if cached, serr := p.snap.LoadBlogs(); serr == nil && len(cached) > 0 {
			return BlogResult{Posts: cached, Source: SourceSnapshot}
		}
	}

	return BlogResult{Posts: SamplePosts(), Source: SourceSample}
}
