package store

import (
	"testing"

	"cakmak-pos/models"
)

func product(id int, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Prices: []models.Price{{Value: price}}}
}

func TestAddMergesIdenticalModifiers(t *testing.T) {
	cart := NewCart()
	ayran := product(1, "Ayran", 15)

	cart.Add(ayran, Extra{})
	cart.Add(ayran, Extra{})

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", lines[0].Qty)
	}
}

func TestAddKeepsDistinctModifiersApart(t *testing.T) {
	cart := NewCart()
	durum := product(2, "Tavuk Dürüm", 90)

	cart.Add(durum, Extra{Garnitures: "soğan"})
	cart.Add(durum, Extra{Garnitures: "soğan", Note: "acılı"})
	cart.Add(durum, Extra{Garnitures: "soğan"})

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Qty != 2 || lines[1].Qty != 1 {
		t.Errorf("unexpected quantities: %d, %d", lines[0].Qty, lines[1].Qty)
	}
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Ayran", 15), Extra{})

	cart.Decrement(1)
	if len(cart.Lines()) != 0 {
		t.Error("expected line removed at zero qty")
	}
	if !cart.Empty() {
		t.Error("expected empty cart")
	}
}

func TestDecrementUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Ayran", 15), Extra{})

	cart.Decrement(99)
	if len(cart.Lines()) != 1 {
		t.Error("unknown product id must not touch the cart")
	}
}

func TestTotalRecomputedFromLines(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "Ayran", 25), Extra{})
	cart.Add(product(1, "Ayran", 25), Extra{})
	cart.Add(product(2, "Çay", 40), Extra{})

	if got := cart.Total(); got != 90 {
		t.Errorf("expected total 90, got %v", got)
	}

	cart.Clear()
	if got := cart.Total(); got != 0 {
		t.Errorf("expected total 0 after clear, got %v", got)
	}
}
