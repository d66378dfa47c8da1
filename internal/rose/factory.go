package rose

// Create builds the item variant selected by name. Any name that is not one
// of the special names, including the empty string, yields a normal item.
// Legendary items ignore sellIn and quality.
func Create(name string, sellIn, quality int) Item {
	switch CategoryOf(name) {
	case CategoryAgedBrie:
		return &AgedBrie{stock{name: name, sellIn: sellIn, quality: quality}}
	case CategoryBackstagePass:
		return &BackstagePass{stock{name: name, sellIn: sellIn, quality: quality}}
	case CategoryLegendary:
		return newSulfuras()
	default:
		return &Normal{stock{name: name, sellIn: sellIn, quality: quality}}
	}
}
