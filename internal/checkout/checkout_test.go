package checkout

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/testkit"
)

func fixtureCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(&cart.MemoryDriver{})
	store.AddToCart(models.Product{ID: "1", Name: "Premium Notebook", Price: 24.99, Category: "Notebooks"})
	store.AddToCart(models.Product{ID: "2", Name: "Fountain Pen Set", Price: 45.99, Category: "Pens"})
	store.AddToCart(models.Product{ID: "1", Name: "Premium Notebook", Price: 24.99, Category: "Notebooks"})
	return store
}

func validInfo() CustomerInfo {
	return CustomerInfo{Name: "Ahmad", Phone: "0999123456", Address: "Old Town 12"}
}

func TestAreaByNameIsCaseInsensitive(t *testing.T) {
	area, ok := AreaByName("tartous")
	if !ok || area.Name != "Tartous" || area.Cost != 5 {
		t.Fatalf("got %+v ok=%v", area, ok)
	}

	if _, ok := AreaByName("Palmyra"); ok {
		t.Fatal("unknown area should not resolve")
	}
}

func TestSummarizeTotals(t *testing.T) {
	agg := NewAggregator(fixtureCart(t), backend.NewWithOrigin("http://backend.test"))

	// Two notebooks at 24.99 plus one pen set at 45.99.
	summary, err := agg.Summarize("Tartous")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(summary.Subtotal-95.97) > 1e-9 {
		t.Fatalf("subtotal = %v, want 95.97", summary.Subtotal)
	}
	if math.Abs(summary.Total-100.97) > 1e-9 {
		t.Fatalf("total = %v, want 100.97", summary.Total)
	}

	summary, err = agg.Summarize("Aleppo")
	if err != nil {
		t.Fatal(err)
	}
	if summary.DeliveryCost != 15 {
		t.Fatalf("delivery = %v, want 15", summary.DeliveryCost)
	}
	if math.Abs(summary.Total-110.97) > 1e-9 {
		t.Fatalf("total = %v, want 110.97", summary.Total)
	}
}

func TestSummarizeUnknownArea(t *testing.T) {
	agg := NewAggregator(fixtureCart(t), backend.NewWithOrigin("http://backend.test"))

	if _, err := agg.Summarize("Palmyra"); !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("err = %v, want ErrUnknownArea", err)
	}
}

func TestBuildOrderSnapshotsCart(t *testing.T) {
	store := fixtureCart(t)
	agg := NewAggregator(store, backend.NewWithOrigin("http://backend.test"))

	order, err := agg.BuildOrder(validInfo(), "Homs")
	if err != nil {
		t.Fatal(err)
	}

	if len(order.Products) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Products))
	}
	if order.Products[0].Quantity != 2 || order.Products[0].ProductID != "1" {
		t.Fatalf("first line = %+v", order.Products[0])
	}
	if order.Status != models.OrderPending {
		t.Fatalf("status = %q, want pending", order.Status)
	}

	// Later cart edits must not leak into an already built order.
	store.ClearCart()
	if len(order.Products) != 2 {
		t.Fatal("order lines changed after cart edit")
	}
}

func TestBuildOrderEmptyCart(t *testing.T) {
	agg := NewAggregator(cart.NewStore(&cart.MemoryDriver{}), backend.NewWithOrigin("http://backend.test"))

	if _, err := agg.BuildOrder(validInfo(), "Homs"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	mt := &testkit.MockTransport{}
	defer mt.Install()()

	agg := NewAggregator(fixtureCart(t), backend.NewWithOrigin("http://backend.test"))

	_, err := agg.Submit(context.Background(), CustomerInfo{Name: "Ahmad"}, "Tartous")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := verr["phone"]; !ok {
		t.Fatalf("expected a phone message, got %v", verr)
	}
	if _, ok := verr["address"]; !ok {
		t.Fatalf("expected an address message, got %v", verr)
	}

	mt.AssertNotCalled(t, "POST", "/api/sendorder")
}

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/api/sendorder", 201, `{"message":"order received"}`)
	defer mt.Install()()

	store := fixtureCart(t)
	agg := NewAggregator(store, backend.NewWithOrigin("http://backend.test"))

	order, err := agg.Submit(context.Background(), validInfo(), "Tartous")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(order.Total-100.97) > 1e-9 {
		t.Fatalf("total = %v, want 100.97", order.Total)
	}

	mt.AssertCalled(t, "POST", "/api/sendorder")
	if store.Count() != 0 {
		t.Fatal("cart should be empty after a successful submit")
	}
}

func TestSubmitKeepsCartOnFailure(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/api/sendorder", 500, `{"error":"database unavailable"}`)
	defer mt.Install()()

	store := fixtureCart(t)
	agg := NewAggregator(store, backend.NewWithOrigin("http://backend.test"))

	if _, err := agg.Submit(context.Background(), validInfo(), "Tartous"); err == nil {
		t.Fatal("expected an error from a 500 response")
	}
	if store.Count() != 3 {
		t.Fatalf("cart count = %d, want 3 after failed submit", store.Count())
	}
}
