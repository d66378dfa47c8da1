package rose

// Normal degrades by one a day, twice as fast once expired.
type Normal struct {
	stock
}

func (n *Normal) Category() Category { return CategoryNormal }

// AdvanceOneDay implements Item.
func (n *Normal) AdvanceOneDay() {
	n.decreaseQuality()
	n.decreaseSellIn()
	if n.expired() {
		n.decreaseQuality()
	}
}
