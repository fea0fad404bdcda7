package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

func TestItemRepositoryCRUD(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Item{InternalItemName: "Steel Rod", Type: entity.ItemTypePurchase, UoM: entity.UoMKgs})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Errorf("Expected assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Errorf("Expected timestamps to be set")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.InternalItemName != "Steel Rod" {
		t.Errorf("Expected Steel Rod, got %s", got.InternalItemName)
	}

	got.InternalItemName = "Steel Rod v2"
	updated, err := repo.Update(ctx, got)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Update must preserve CreatedAt")
	}
	if updated.InternalItemName != "Steel Rod v2" {
		t.Errorf("Expected updated name, got %s", updated.InternalItemName)
	}
}

func TestItemRepositorySoftDelete(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	if repo.Policy() != DeleteSoft {
		t.Fatalf("Expected soft delete policy for items")
	}

	created, _ := repo.Create(ctx, &entity.Item{InternalItemName: "Widget", Type: entity.ItemTypeComponent, UoM: entity.UoMNos})
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if got := repo.List(ctx); len(got) != 0 {
		t.Errorf("Expected empty list after delete, got %d", len(got))
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestBOMRepositoryHardDelete(t *testing.T) {
	repo := NewBOMRepository()
	ctx := context.Background()

	if repo.Policy() != DeleteHard {
		t.Fatalf("Expected hard delete policy for bom entries")
	}

	created, _ := repo.Create(ctx, &entity.BOMEntry{ItemID: "a", ComponentID: "b", Quantity: 2})
	if !repo.ExistsPair(ctx, "a", "b") {
		t.Errorf("Expected pair to exist")
	}
	if repo.ExistsPair(ctx, "b", "a") {
		t.Errorf("Pair check must be direction sensitive")
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if repo.ExistsPair(ctx, "a", "b") {
		t.Errorf("Expected pair gone after hard delete")
	}
	if got := repo.List(ctx); len(got) != 0 {
		t.Errorf("Expected empty list, got %d", len(got))
	}
}

func TestBOMRepositoryBatchCreate(t *testing.T) {
	repo := NewBOMRepository()
	ctx := context.Background()

	stored, err := repo.BatchCreate(ctx, []entity.BOMEntry{
		{ItemID: "a", ComponentID: "b", Quantity: 1},
		{ItemID: "a", ComponentID: "c", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("BatchCreate failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(stored))
	}
	if stored[0].ID == "" || stored[1].ID == "" || stored[0].ID == stored[1].ID {
		t.Errorf("Expected distinct assigned IDs")
	}
}

func TestProcessStepListByProcess(t *testing.T) {
	repo := NewProcessStepRepository()
	ctx := context.Background()

	repo.Create(ctx, &entity.ProcessStep{ProcessID: "p1", Name: "pack", StepNumber: 3})
	repo.Create(ctx, &entity.ProcessStep{ProcessID: "p1", Name: "cut", StepNumber: 1})
	repo.Create(ctx, &entity.ProcessStep{ProcessID: "p2", Name: "other", StepNumber: 2})
	repo.Create(ctx, &entity.ProcessStep{ProcessID: "p1", Name: "weld", StepNumber: 2})

	steps := repo.ListByProcess(ctx, "p1")
	if len(steps) != 3 {
		t.Fatalf("Expected 3 steps for p1, got %d", len(steps))
	}
	for i, want := range []string{"cut", "weld", "pack"} {
		if steps[i].Name != want {
			t.Errorf("Expected step %d to be %s, got %s", i, want, steps[i].Name)
		}
	}
}

func TestWorkCenterSoftDelete(t *testing.T) {
	repo := NewWorkCenterRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, &entity.WorkCenter{Name: "Assembly Line 1", Code: "AL001"})
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := repo.List(ctx); len(got) != 0 {
		t.Errorf("Expected deleted work center hidden from list, got %d", len(got))
	}
}
