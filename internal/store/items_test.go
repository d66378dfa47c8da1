package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/gildedrose/internal/db"
	"github.com/erazemk/gildedrose/internal/rose"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, rose.NameAgedBrie, "Wheel from the cellar", 10, 20)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != rose.NameAgedBrie {
		t.Errorf("expected name %q, got %q", rose.NameAgedBrie, item.Name)
	}
	if item.Category != string(rose.CategoryAgedBrie) {
		t.Errorf("expected category aged_brie, got %q", item.Category)
	}
	if item.SellIn != 10 || item.Quality != 20 {
		t.Errorf("expected (10, 20), got (%d, %d)", item.SellIn, item.Quality)
	}

	missing, err := GetItem(ctx, database, item.ID+100)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing item")
	}
}

func TestCreateLegendaryItemIsPinned(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, rose.NameSulfuras, "", 10, 50)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.SellIn != rose.LegendarySellIn || item.Quality != rose.LegendaryQuality {
		t.Errorf("expected (0, 80), got (%d, %d)", item.SellIn, item.Quality)
	}
	if item.Category != string(rose.CategoryLegendary) {
		t.Errorf("expected category legendary, got %q", item.Category)
	}
}

func TestListItemsByCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "+5 Dexterity Vest", "", 10, 20)
	CreateItem(ctx, database, rose.NameBackstagePass, "", 15, 20)
	CreateItem(ctx, database, rose.NameBackstagePass, "", 5, 49)

	all, _ := ListItems(ctx, database, "")
	if len(all) != 3 {
		t.Errorf("expected 3 items, got %d", len(all))
	}
	if len(all) > 0 && all[0].Name != "+5 Dexterity Vest" {
		t.Errorf("expected items in stocking order, first is %q", all[0].Name)
	}

	passes, _ := ListItems(ctx, database, string(rose.CategoryBackstagePass))
	if len(passes) != 2 {
		t.Errorf("expected 2 backstage passes, got %d", len(passes))
	}
}

func TestUpdateItemDescription(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Elixir of the Mongoose", "", 5, 7)
	if err := UpdateItemDescription(ctx, database, item.ID, "Shelf 3"); err != nil {
		t.Fatalf("UpdateItemDescription: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.Description != "Shelf 3" {
		t.Errorf("expected description 'Shelf 3', got %q", got.Description)
	}

	err := UpdateItemDescription(ctx, database, item.ID+1, "nope")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSoftDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Delete Me", "", 1, 1)
	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	items, _ := ListItems(ctx, database, "")
	if len(items) != 0 {
		t.Errorf("expected 0 items after soft delete, got %d", len(items))
	}

	// Should still be fetchable by ID (for history).
	got, _ := GetItem(ctx, database, item.ID)
	if got == nil || got.DeletedAt == nil {
		t.Error("expected soft-deleted item to still be fetchable by ID")
	}

	if err := DeleteItem(ctx, database, item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Photo Item", "", 3, 3)
	imageData := []byte("fake image data")
	if err := SetItemImage(ctx, database, item.ID, imageData, "image/jpeg"); err != nil {
		t.Fatalf("SetItemImage: %v", err)
	}

	data, mime, err := GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
