package rose

// Days-before-concert thresholds at which backstage passes gain faster.
const (
	doubleGainDays = 10
	tripleGainDays = 5
)

// BackstagePass gains value as the concert approaches and is worthless
// after it.
type BackstagePass struct {
	stock
}

func (p *BackstagePass) Category() Category { return CategoryBackstagePass }

// AdvanceOneDay implements Item.
func (p *BackstagePass) AdvanceOneDay() {
	p.gainBeforeConcert()
	p.decreaseSellIn()
	if p.expired() {
		p.quality = MinQuality
	}
}

// gainBeforeConcert applies one to three increments depending on the days
// left. Each increment is capped separately.
func (p *BackstagePass) gainBeforeConcert() {
	p.increaseQuality()
	if p.sellIn <= doubleGainDays {
		p.increaseQuality()
	}
	if p.sellIn <= tripleGainDays {
		p.increaseQuality()
	}
}
