package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/testkit"
)

// fakeSnap is an in-memory Snapshotter.
type fakeSnap struct {
	products []models.Product
	posts    []models.BlogPost
	saves    int
}

func (f *fakeSnap) SaveProducts(p []models.Product) error { f.products = p; f.saves++; return nil }
func (f *fakeSnap) LoadProducts() ([]models.Product, error) { return f.products, nil }
func (f *fakeSnap) SaveBlogs(b []models.BlogPost) error     { f.posts = b; f.saves++; return nil }
func (f *fakeSnap) LoadBlogs() ([]models.BlogPost, error)   { return f.posts, nil }

func TestProviderLiveFetchUpdatesSnapshot(t *testing.T) {
	mt := testkit.NewMockTransport().
		Stub("GET", "/product/get", 200, `[{"_id":"9","name":"Ruler","price":3.5,"category":"Other tools"}]`)
	defer mt.Install()()

	snap := &fakeSnap{}
	p := catalog.NewProvider(backend.NewWithOrigin("http://backend.test"), snap)

	res := p.Products(context.Background())
	if res.Source != catalog.SourceLive {
		t.Fatalf("source: got %q want live", res.Source)
	}
	if len(res.Products) != 1 || res.Products[0].ID != "9" {
		t.Fatalf("unexpected products: %+v", res.Products)
	}
	if len(snap.products) != 1 {
		t.Error("successful fetch should refresh the snapshot")
	}
}

func TestProviderFallsBackToSnapshot(t *testing.T) {
	mt := testkit.NewMockTransport().
		StubError("GET", "/product/get", errors.New("connection refused"))
	defer mt.Install()()

	snap := &fakeSnap{products: []models.Product{{ID: "cached", Name: "Cached Pen"}}}
	p := catalog.NewProvider(backend.NewWithOrigin("http://backend.test"), snap)

	res := p.Products(context.Background())
	if res.Source != catalog.SourceSnapshot {
		t.Fatalf("source: got %q want snapshot", res.Source)
	}
	if res.Products[0].ID != "cached" {
		t.Errorf("expected snapshot contents, got %+v", res.Products)
	}
}

func TestProviderFallsBackToSamples(t *testing.T) {
	mt := testkit.NewMockTransport().
		StubError("GET", "/product/get", errors.New("connection refused")).
		StubError("GET", "/blog/getblogs", errors.New("connection refused"))
	defer mt.Install()()

	p := catalog.NewProvider(backend.NewWithOrigin("http://backend.test"), &fakeSnap{})

	res := p.Products(context.Background())
	if res.Source != catalog.SourceSample {
		t.Fatalf("source: got %q want sample", res.Source)
	}
	if len(res.Products) == 0 {
		t.Fatal("sample catalogue must not be empty")
	}

	// Blog failure is independent and degrades the same way.
	blogs := p.Blogs(context.Background())
	if blogs.Source != catalog.SourceSample || len(blogs.Posts) == 0 {
		t.Errorf("blog fallback: source=%q posts=%d", blogs.Source, len(blogs.Posts))
	}
}

func TestProviderToleratesEnvelopedList(t *testing.T) {
	mt := testkit.NewMockTransport().
		Stub("GET", "/product/get", 200, `{"products":[{"_id":"e1","name":"Enveloped"}]}`)
	defer mt.Install()()

	p := catalog.NewProvider(backend.NewWithOrigin("http://backend.test"), nil)

	res := p.Products(context.Background())
	if res.Source != catalog.SourceLive || len(res.Products) != 1 {
		t.Fatalf("enveloped list not accepted: %+v", res)
	}
}
