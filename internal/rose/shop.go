package rose

// AdvanceOneDay ages every item by one day, in slice order. The slice is
// not retained.
func AdvanceOneDay(items []Item) {
	for _, item := range items {
		item.AdvanceOneDay()
	}
}

// AdvanceDays calls AdvanceOneDay days times. Non-positive values are no-ops.
func AdvanceDays(items []Item, days int) {
	for range days {
		AdvanceOneDay(items)
	}
}

// SampleInventory returns the standard inventory used for fixture runs.
func SampleInventory() []Item {
	return []Item{
		Create("+5 Dexterity Vest", 10, 20),
		Create(NameAgedBrie, 2, 0),
		Create("Elixir of the Mongoose", 5, 7),
		Create(NameSulfuras, 0, 80),
		Create(NameSulfuras, -1, 80),
		Create(NameBackstagePass, 15, 20),
		Create(NameBackstagePass, 10, 49),
		Create(NameBackstagePass, 5, 49),
		Create("Conjured Mana Cake", 3, 6),
	}
}
