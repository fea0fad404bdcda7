package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bitfantasy/masterlist/internal/config"
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/repository"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

func setupImportTest(t *testing.T) (*ImportService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories()
	svc := NewImportService(repos.Item, repos.BOM, config.Default(), zap.NewNop())
	return svc, repos
}

func TestImportItemsPersistsValidFile(t *testing.T) {
	svc, repos := setupImportTest(t)
	csvData := "internal_item_name,type,uom,min_buffer,max_buffer,scrap_type\n" +
		"Steel Rod,purchase,kgs,5,10,\n" +
		"Widget,sell,nos,2,4,offcut\n"

	result, err := svc.ImportItems(context.Background(), "items.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("Expected no row errors, got %v", result.Errors)
	}
	if len(result.Data) != 2 {
		t.Fatalf("Expected 2 imported items, got %d", len(result.Data))
	}
	if got := repos.Item.List(context.Background()); len(got) != 2 {
		t.Errorf("Expected 2 persisted items, got %d", len(got))
	}
	if result.Data[0].TenantID != 1 || result.Data[0].CreatedBy != "system_user" {
		t.Errorf("Expected tenant and audit fields stamped, got %+v", result.Data[0])
	}
}

func TestImportItemsAllOrNothing(t *testing.T) {
	svc, repos := setupImportTest(t)
	csvData := "internal_item_name,type,uom,min_buffer\n" +
		"Steel Rod,purchase,kgs,5\n" +
		"Bad Item,consumable,kgs,5\n"

	result, err := svc.ImportItems(context.Background(), "items.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 row error, got %d: %v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Row != 3 {
		t.Errorf("Expected error on row 3, got %d", result.Errors[0].Row)
	}
	if len(result.Data) != 0 {
		t.Errorf("Expected no data on rejected import")
	}
	if got := repos.Item.List(context.Background()); len(got) != 0 {
		t.Errorf("Valid rows must not be persisted when any row fails, got %d", len(got))
	}
}

func TestImportItemsDuplicateWithinFile(t *testing.T) {
	svc, _ := setupImportTest(t)
	csvData := "internal_item_name,type,uom,min_buffer\n" +
		"Steel Rod,purchase,kgs,5\n" +
		"steel rod,purchase,kgs,5\n"

	result, err := svc.ImportItems(context.Background(), "items.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 duplicate error, got %v", result.Errors)
	}
	// 先到先得：第3行被拒
	if result.Errors[0].Row != 3 || result.Errors[0].Field != "internal_item_name" {
		t.Errorf("Unexpected error: %+v", result.Errors[0])
	}
}

func TestImportItemsHeaderOnly(t *testing.T) {
	svc, repos := setupImportTest(t)
	result, err := svc.ImportItems(context.Background(), "items.csv",
		strings.NewReader("internal_item_name,type,uom\n"))
	if err != nil {
		t.Fatalf("Expected no error for header-only file, got %v", err)
	}
	if len(result.Errors) != 0 || len(result.Data) != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
	if got := repos.Item.List(context.Background()); len(got) != 0 {
		t.Errorf("Expected nothing persisted")
	}
}

func TestImportItemsStructuralErrors(t *testing.T) {
	svc, _ := setupImportTest(t)

	if _, err := svc.ImportItems(context.Background(), "items.csv", strings.NewReader("")); err != tabular.ErrEmptyFile {
		t.Errorf("Expected ErrEmptyFile, got %v", err)
	}
}

func TestImportItemsTemplateRoundTrip(t *testing.T) {
	svc, _ := setupImportTest(t)
	data, err := tabular.ItemTemplate.CSV()
	if err != nil {
		t.Fatalf("Failed to build template: %v", err)
	}

	result, err := svc.ImportItems(context.Background(), "items_template.csv", strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("Template example must import cleanly, got %v", result.Errors)
	}
	if len(result.Data) != 1 {
		t.Errorf("Expected 1 imported item from template, got %d", len(result.Data))
	}
}

func TestImportBOM(t *testing.T) {
	svc, repos := setupImportTest(t)
	ctx := context.Background()

	sell, _ := repos.Item.Create(ctx, &entity.Item{InternalItemName: "Widget", Type: entity.ItemTypeSell, UoM: entity.UoMNos})
	comp, _ := repos.Item.Create(ctx, &entity.Item{InternalItemName: "Bolt", Type: entity.ItemTypeComponent, UoM: entity.UoMNos})

	csvData := "item_id,component_id,quantity,is_active\n" +
		sell.ID + "," + comp.ID + ",4,TRUE\n"

	result, err := svc.ImportBOM(ctx, "bom.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("Expected no row errors, got %v", result.Errors)
	}
	if len(result.Data) != 1 {
		t.Fatalf("Expected 1 bom entry, got %d", len(result.Data))
	}
	if !repos.BOM.ExistsPair(ctx, sell.ID, comp.ID) {
		t.Errorf("Expected pair persisted")
	}
}

func TestImportBOMDuplicatePairWithinFile(t *testing.T) {
	svc, repos := setupImportTest(t)
	ctx := context.Background()

	sell, _ := repos.Item.Create(ctx, &entity.Item{InternalItemName: "Widget", Type: entity.ItemTypeSell, UoM: entity.UoMKgs})
	comp, _ := repos.Item.Create(ctx, &entity.Item{InternalItemName: "Bolt", Type: entity.ItemTypeComponent, UoM: entity.UoMKgs})

	csvData := "item_id,component_id,quantity\n" +
		sell.ID + "," + comp.ID + ",4\n" +
		sell.ID + "," + comp.ID + ",6\n"

	result, err := svc.ImportBOM(ctx, "bom.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 duplicate error, got %v", result.Errors)
	}
	if result.Errors[0].Row != 3 {
		t.Errorf("Expected error on row 3, got %d", result.Errors[0].Row)
	}
	if got := repos.BOM.List(ctx); len(got) != 0 {
		t.Errorf("Expected nothing persisted on rejected import, got %d", len(got))
	}
}
