package collection_test

import (
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/pkg/collection"
)

func TestMapAndSum(t *testing.T) {
	prices := collection.Map([]int{1, 2, 3}, func(n int) float64 { return float64(n) * 2 })
	if len(prices) != 3 || prices[2] != 6 {
		t.Fatalf("map = %v", prices)
	}

	total := collection.Sum(prices, func(f float64) float64 { return f })
	if total != 12 {
		t.Fatalf("sum = %v, want 12", total)
	}
}

func TestFilterAndReject(t *testing.T) {
	even := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(even) != 2 {
		t.Fatalf("filter = %v", even)
	}

	odd := collection.Reject([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(odd) != 2 || odd[0] != 1 {
		t.Fatalf("reject = %v", odd)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]string{"pen", "paper"}, func(s string) bool { return s == "paper" })
	if !ok || v != "paper" {
		t.Fatalf("first = %q, %v", v, ok)
	}

	_, ok = collection.First([]string{"pen"}, func(s string) bool { return s == "ink" })
	if ok {
		t.Fatal("expected no match")
	}
}
