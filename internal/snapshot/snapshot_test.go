package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptyStoreLoadsNothing(t *testing.T) {
	store := openStore(t)

	products, err := store.LoadProducts()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("got %d products from an empty store", len(products))
	}

	posts, err := store.LoadBlogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Fatalf("got %d posts from an empty store", len(posts))
	}
}

func TestProductRoundtrip(t *testing.T) {
	store := openStore(t)

	in := []models.Product{
		{ID: "1", Name: "Premium Notebook", Description: "Hardcover", Price: 24.99, Category: "Notebooks", Image: "/uploads/notebook.jpg"},
		{ID: "2", Name: "Fountain Pen Set", Description: "Three nibs", Price: 45.99, Category: "Pens"},
	}
	if err := store.SaveProducts(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.LoadProducts()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d products, want 2", len(out))
	}
	if out[0].Name != "Fountain Pen Set" || out[0].Price != 45.99 {
		t.Fatalf("first product = %+v", out[0])
	}
	if out[1].Image != "/uploads/notebook.jpg" {
		t.Fatalf("image = %q", out[1].Image)
	}
}

func TestSaveReplacesPreviousSet(t *testing.T) {
	store := openStore(t)

	if err := store.SaveProducts([]models.Product{
		{ID: "1", Name: "Premium Notebook", Price: 24.99},
		{ID: "2", Name: "Fountain Pen Set", Price: 45.99},
	}); err != nil {
		t.Fatal(err)
	}

	// A later fetch with fewer items must not leave leftovers behind.
	if err := store.SaveProducts([]models.Product{
		{ID: "3", Name: "Watercolor Paper Pack", Price: 18.99},
	}); err != nil {
		t.Fatal(err)
	}

	out, err := store.LoadProducts()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("got %+v, want only the replacement product", out)
	}
}

func TestBlogRoundtrip(t *testing.T) {
	store := openStore(t)

	in := []models.BlogPost{
		{ID: "a", Title: "Choosing paper", Content: "Weight matters.", Author: "Lina", CreatedAt: "2026-05-10"},
	}
	if err := store.SaveBlogs(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.LoadBlogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Title != "Choosing paper" || out[0].CreatedAt != "2026-05-10" {
		t.Fatalf("got %+v", out)
	}
}

func TestSaveEmptySetClears(t *testing.T) {
	store := openStore(t)

	if err := store.SaveProducts([]models.Product{{ID: "1", Name: "Premium Notebook"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveProducts(nil); err != nil {
		t.Fatal(err)
	}

	out, err := store.LoadProducts()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d products after clearing", len(out))
	}
}
