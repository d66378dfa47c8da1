package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/gildedrose/internal/model"
	"github.com/erazemk/gildedrose/internal/rose"
)

// ErrItemNotFound is returned when an item does not exist or was deleted.
var ErrItemNotFound = errors.New("item not found")

const itemColumns = `id, name, category, description, sell_in, quality, image_mime, created_at, updated_at, deleted_at`

// CreateItem stocks a new item. The initial values go through rose.Create,
// so legendary items are stored with their fixed values.
func CreateItem(ctx context.Context, db *sql.DB, name, description string, sellIn, quality int) (*model.Item, error) {
	item := rose.Create(name, sellIn, quality)

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, category, description, sell_in, quality) VALUES (?, ?, ?, ?, ?)`,
		item.Name(), string(item.Category()), description, item.SellIn(), item.Quality(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, including soft-deleted ones.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all non-deleted items in stocking order, optionally
// filtered by category.
func ListItems(ctx context.Context, db *sql.DB, category string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NULL AND category = ? ORDER BY id`, category,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NULL ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItemDescription changes an item's description. Name, and with it
// the category, is fixed once stocked.
func UpdateItemDescription(ctx context.Context, db *sql.DB, id int64, description string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		description, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return requireAffected(result, ErrItemNotFound)
}

// DeleteItem soft-deletes an item. Deleted items are no longer aged.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireAffected(result, ErrItemNotFound)
}

// SetItemImage sets an item's image data.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return requireAffected(result, ErrItemNotFound)
}

// GetItemImage returns an item's image data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.Category, &description, &item.SellIn, &item.Quality,
		&imageMime, &item.CreatedAt, &item.UpdatedAt, &item.DeletedAt)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

func requireAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
