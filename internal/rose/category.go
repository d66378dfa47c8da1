package rose

// Category identifies which rule set an item ages by.
type Category string

// Categories.
const (
	CategoryNormal        Category = "normal"
	CategoryAgedBrie      Category = "aged_brie"
	CategoryBackstagePass Category = "backstage_pass"
	CategoryLegendary     Category = "legendary"
)

// Names that select a special category. Matching is exact.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
)

// CategoryOf returns the category an item with the given name belongs to.
func CategoryOf(name string) Category {
	switch name {
	case NameAgedBrie:
		return CategoryAgedBrie
	case NameBackstagePass:
		return CategoryBackstagePass
	case NameSulfuras:
		return CategoryLegendary
	default:
		return CategoryNormal
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNormal, CategoryAgedBrie, CategoryBackstagePass, CategoryLegendary:
		return true
	}
	return false
}
