package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/erazemk/gildedrose/internal/model"
	"github.com/erazemk/gildedrose/internal/rose"
)

// ErrInvalidDays is returned when asked to advance by a non-positive number of days.
var ErrInvalidDays = errors.New("days must be positive")

// MaxAdvanceDays bounds a single AdvanceDays call.
const MaxAdvanceDays = 3650

// agedItem pairs a persisted row with the in-memory item that ages it.
type agedItem struct {
	id   int64
	item rose.Item
}

// AdvanceDays ages every active item by the given number of days in a
// single transaction and returns the resulting stock.
func AdvanceDays(ctx context.Context, db *sql.DB, days int, userID *int64) (*model.DayReport, error) {
	if days <= 0 || days > MaxAdvanceDays {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrInvalidDays, days, MaxAdvanceDays)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	day, err := currentDay(ctx, tx)
	if err != nil {
		return nil, err
	}

	stock, err := loadActiveItems(ctx, tx)
	if err != nil {
		return nil, err
	}

	items := make([]rose.Item, len(stock))
	for i, s := range stock {
		items[i] = s.item
	}

	report := &model.DayReport{FromDay: day + 1}
	for range days {
		day++
		before := snapshot(items)
		rose.AdvanceOneDay(items)

		for i, s := range stock {
			if err := saveDay(ctx, tx, day, s, before[i], userID); err != nil {
				return nil, err
			}
		}
		slog.Info("day advanced", "day", day, "items", len(items))
	}
	report.ToDay = day

	if err := setCurrentDay(ctx, tx, day); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing day advance: %w", err)
	}

	report.Items, err = ListItems(ctx, db, "")
	if err != nil {
		return nil, err
	}
	if report.Items == nil {
		report.Items = []model.Item{}
	}
	return report, nil
}

// GetItemHistory returns the day log of an item, newest day first.
func GetItemHistory(ctx context.Context, db *sql.DB, itemID int64) ([]model.DayLog, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT l.day, l.item_id, l.sell_in_before, l.quality_before, l.sell_in_after, l.quality_after,
		        l.advanced_at, l.advanced_by, i.name AS item_name
		 FROM day_log l
		 JOIN items i ON i.id = l.item_id
		 WHERE l.item_id = ?
		 ORDER BY l.day DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting item history: %w", err)
	}
	defer rows.Close()

	var logs []model.DayLog
	for rows.Next() {
		var l model.DayLog
		if err := rows.Scan(&l.Day, &l.ItemID, &l.SellInBefore, &l.QualityBefore, &l.SellInAfter, &l.QualityAfter,
			&l.AdvancedAt, &l.AdvancedBy, &l.ItemName); err != nil {
			return nil, fmt.Errorf("scanning day log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// loadActiveItems reads every non-deleted item in stocking order. Rows are
// fully read before any write happens on the transaction.
func loadActiveItems(ctx context.Context, tx *sql.Tx) ([]agedItem, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, sell_in, quality FROM items WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	var stock []agedItem
	for rows.Next() {
		var (
			id              int64
			name            string
			sellIn, quality int
		)
		if err := rows.Scan(&id, &name, &sellIn, &quality); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		stock = append(stock, agedItem{id: id, item: rose.Create(name, sellIn, quality)})
	}
	return stock, rows.Err()
}

func snapshot(items []rose.Item) [][2]int {
	out := make([][2]int, len(items))
	for i, item := range items {
		out[i] = [2]int{item.SellIn(), item.Quality()}
	}
	return out
}

func saveDay(ctx context.Context, tx *sql.Tx, day int, s agedItem, before [2]int, userID *int64) error {
	sellIn, quality := s.item.SellIn(), s.item.Quality()

	if sellIn != before[0] || quality != before[1] {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET sell_in = ?, quality = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			sellIn, quality, s.id,
		); err != nil {
			return fmt.Errorf("saving item %d: %w", s.id, err)
		}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO day_log (day, item_id, sell_in_before, quality_before, sell_in_after, quality_after, advanced_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		day, s.id, before[0], before[1], sellIn, quality, userID,
	)
	if err != nil {
		return fmt.Errorf("logging day %d for item %d: %w", day, s.id, err)
	}
	return nil
}
