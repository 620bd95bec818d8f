package catalog

// Item is one purchasable menu entry. The menu is fixed at process start and
// never persisted.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type Catalog struct {
	items []Item
	byID  map[int]Item
}

func New(items []Item) *Catalog {
	byID := make(map[int]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}
}

// Default returns the café menu.
func Default() *Catalog {
	return New([]Item{
		{ID: 1, Name: "CAFFE LATTE", Price: 339.9, ImageURL: "https://img.freepik.com/premium-photo/hot-coffee-capuccino-cup-with-latte-art-wood-table-cafe_778722-16.jpg"},
		{ID: 2, Name: "CAFFE MOCHA", Price: 449.9, ImageURL: "https://krave.com.bd/wp-content/uploads/2020/06/Cafe-Mocha.jpg"},
		{ID: 3, Name: "WHITE CHOCOLATE MOCHA", Price: 599.9, ImageURL: "https://www.littlesugarsnaps.com/wp-content/uploads/2022/01/white-chocolate-mocha-square.jpg"},
		{ID: 4, Name: "EGGS BENEDICT", Price: 339.9, ImageURL: "https://www.foodandwine.com/thmb/j6Ak6jECu0fdly1XFHsp4zZM8gQ=/1500x0/filters:no_upscale():max_bytes(150000):strip_icc()/Eggs-Benedict-FT-RECIPE0123-4f5f2f2544464dc89a667b5d960603b4.jpg"},
		{ID: 5, Name: "PANCAKES AND FRESH BERRIES", Price: 449.9, ImageURL: "https://static.vecteezy.com/system/resources/previews/030/625/221/large_2x/pancakes-image-hd-free-photo.jpg"},
		{ID: 6, Name: "GREEK YOGURT", Price: 459.9, ImageURL: "https://muscleupmeals.com/wp-content/uploads/2022/07/Greek-Yogurt-Nutrition.600.jpg"},
		{ID: 7, Name: "CHOCOLATE LAVA CAKE", Price: 299.9, ImageURL: "https://www.bakels.in/wp-content/uploads/sites/15/2019/10/unnamed.jpg"},
		{ID: 8, Name: "CLASSIC CHEESE CAKE", Price: 339.9, ImageURL: "https://natashaskitchen.com/wp-content/uploads/2020/05/Pefect-Cheesecake-7.jpg"},
		{ID: 9, Name: "TIRAMISU", Price: 369.9, ImageURL: "https://img.freepik.com/premium-photo/italian-tiramisu-dessert-realistic-photo-hd-picture_1021165-312.jpg"},
	})
}

func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Get(id int) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}
