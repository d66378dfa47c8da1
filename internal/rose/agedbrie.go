package rose

// AgedBrie improves with age, twice as fast once expired.
type AgedBrie struct {
	stock
}

func (b *AgedBrie) Category() Category { return CategoryAgedBrie }

// AdvanceOneDay implements Item.
func (b *AgedBrie) AdvanceOneDay() {
	b.increaseQuality()
	b.decreaseSellIn()
	if b.expired() {
		b.increaseQuality()
	}
}
