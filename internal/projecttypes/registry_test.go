package projecttypes

import (
	"testing"

	"target-price-engine/internal/model"
)

func TestListStableOrder(t *testing.T) {
	list := List()
	if len(list) != 3 {
		t.Fatalf("expected 3 project types, got %d", len(list))
	}

	expected := []string{model.ProjectTarget20, model.ProjectTarget30, model.ProjectBuyerReduced}
	for i, id := range expected {
		if list[i].ID != id {
			t.Fatalf("expected %s at position %d, got %s", id, i, list[i].ID)
		}
	}
}

func TestOnlyTarget30RequiresCurrentPrice(t *testing.T) {
	for _, info := range List() {
		requires := info.ID == model.ProjectTarget30
		if info.RequiresCurrentPrice != requires {
			t.Fatalf("%s: expected requires_current_price=%v", info.ID, requires)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("target_4_0"); ok {
		t.Fatal("expected no metadata for an unknown project type")
	}
}
