// Package rose implements the daily aging rules for Gilded Rose inventory.
package rose

// Quality bounds for every category except the legendary one.
const (
	MinQuality = 0
	MaxQuality = 50
)

// Item is one inventory entry that knows how to age itself by a day.
type Item interface {
	Name() string
	Category() Category
	SellIn() int
	Quality() int

	// AdvanceOneDay applies the category's rules for a single day.
	AdvanceOneDay()
}

// stock holds the fields shared by every category and the step
// primitives the rules are built from.
type stock struct {
	name    string
	sellIn  int
	quality int
}

func (s *stock) Name() string  { return s.name }
func (s *stock) SellIn() int   { return s.sellIn }
func (s *stock) Quality() int  { return s.quality }
func (s *stock) expired() bool { return s.sellIn < 0 }

func (s *stock) decreaseSellIn() {
	s.sellIn--
}

// decreaseQuality lowers quality by one unless it is already at the floor.
func (s *stock) decreaseQuality() {
	if s.quality > MinQuality {
		s.quality--
	}
}

// increaseQuality raises quality by one unless it is already at the ceiling.
func (s *stock) increaseQuality() {
	if s.quality < MaxQuality {
		s.quality++
	}
}
