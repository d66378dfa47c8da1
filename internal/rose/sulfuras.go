package rose

// Fixed values of the legendary item.
const (
	LegendarySellIn  = 0
	LegendaryQuality = 80
)

// Sulfuras is legendary: it never has to be sold and never loses quality.
type Sulfuras struct {
	stock
}

func newSulfuras() *Sulfuras {
	return &Sulfuras{stock{name: NameSulfuras, sellIn: LegendarySellIn, quality: LegendaryQuality}}
}

func (s *Sulfuras) Category() Category { return CategoryLegendary }

// AdvanceOneDay implements Item. It does nothing.
func (s *Sulfuras) AdvanceOneDay() {}
