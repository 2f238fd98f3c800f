package handlers

import (
	"testing"

	"shoplist/internal/domain"
)

func TestToWireMapsItemDocument(t *testing.T) {
	l := domain.ShoppingList{
		Awid:      "awid-1",
		ID:        "id-1",
		Name:      "Groceries",
		Category:  "weekly",
		State:     domain.StateActive,
		OwnerID:   "owner-a",
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-02T00:00:00Z",
	}
	l.SetItems([]domain.ListItem{
		{ID: "i1", Name: "mléko", Completed: true, AddedAt: "2026-01-01T00:00:00Z"},
		{ID: "i2", Name: "chléb"},
	})

	w := toWire(l)
	if len(w.Items) != 2 {
		t.Fatalf("want 2 items, got %d", len(w.Items))
	}
	if w.Items[0].ID != "i1" || w.Items[0].Name != "mléko" || !w.Items[0].Completed {
		t.Fatalf("first item mapped wrong: %+v", w.Items[0])
	}
	if w.Items[1].ID != "i2" || w.Items[1].Completed {
		t.Fatalf("second item mapped wrong: %+v", w.Items[1])
	}
	if w.ID != l.ID || w.Awid != l.Awid || w.OwnerID != l.OwnerID || w.State != l.State {
		t.Fatalf("record fields mapped wrong: %+v", w)
	}
}

func TestToWireEmptyDocument(t *testing.T) {
	w := toWire(domain.ShoppingList{ID: "id-1"})
	if w.Items == nil || len(w.Items) != 0 {
		t.Fatalf("want empty non-nil items, got %#v", w.Items)
	}
}
