package cart_test

import (
	"math"
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
)

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "p-" + id, Price: price, Category: "Pens"}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddSameProductMerges(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})

	s.AddToCart(product("1", 24.99))
	s.AddToCart(product("1", 24.99))

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})

	s.AddToCart(product("b", 1))
	s.AddToCart(product("a", 1))
	s.AddToCart(product("c", 1))
	s.AddToCart(product("a", 1)) // merge must not reorder

	items := s.Items()
	got := []string{items[0].ID, items[1].ID, items[2].ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v want %v", got, want)
		}
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})
	s.AddToCart(product("1", 5))
	s.AddToCart(product("2", 5))

	s.UpdateQuantity("1", 0)

	items := s.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Errorf("expected only product 2 to remain, got %+v", items)
	}

	// Negative quantity behaves the same way.
	s.UpdateQuantity("2", -3)
	if len(s.Items()) != 0 {
		t.Error("expected empty cart after negative-quantity update")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})
	s.AddToCart(product("1", 5))

	s.RemoveFromCart("ghost")

	if len(s.Items()) != 1 {
		t.Error("removing an absent id must not change the cart")
	}
}

func TestSubtotalInvariant(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})

	check := func(step string) {
		t.Helper()
		var want float64
		for _, i := range s.Items() {
			want += i.Price * float64(i.Quantity)
		}
		if !almostEqual(s.Subtotal(), want) {
			t.Errorf("%s: subtotal %v != Σ price×qty %v", step, s.Subtotal(), want)
		}
	}

	s.AddToCart(product("1", 24.99))
	check("after add 1")
	s.AddToCart(product("2", 45.99))
	check("after add 2")
	s.AddToCart(product("1", 24.99))
	check("after merge")
	s.UpdateQuantity("2", 7)
	check("after update")
	s.RemoveFromCart("1")
	check("after remove")
	s.ClearCart()
	check("after clear")
}

func TestCountSumsQuantities(t *testing.T) {
	s := cart.NewStore(&cart.MemoryDriver{})
	s.AddToCart(product("1", 1))
	s.AddToCart(product("1", 1))
	s.AddToCart(product("2", 1))
	s.UpdateQuantity("2", 4)

	if got := s.Count(); got != 6 {
		t.Errorf("badge count: got %d want 6", got)
	}
}

func TestToggleDoesNotPersist(t *testing.T) {
	d := &cart.MemoryDriver{}
	s := cart.NewStore(d)

	before := d.Saves()
	if open := s.ToggleCart(); !open {
		t.Error("first toggle should open the drawer")
	}
	if open := s.ToggleCart(); open {
		t.Error("second toggle should close the drawer")
	}
	if d.Saves() != before {
		t.Error("toggling visibility must not write to the driver")
	}
}

func TestMutationsPersist(t *testing.T) {
	d := &cart.MemoryDriver{}
	s := cart.NewStore(d)

	s.AddToCart(product("1", 9.99))
	s.UpdateQuantity("1", 3)

	persisted := d.Items()
	if len(persisted) != 1 || persisted[0].Quantity != 3 {
		t.Fatalf("driver state not in sync: %+v", persisted)
	}

	// A fresh store over the same driver sees the saved cart.
	s2 := cart.NewStore(d)
	if s2.Count() != 3 {
		t.Errorf("reloaded store count: got %d want 3", s2.Count())
	}
}
