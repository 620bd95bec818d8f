package catalog

import "testing"

func TestDefaultMenu(t *testing.T) {
	c := Default()
	items := c.Items()
	if len(items) != 9 {
		t.Fatalf("menu size = %d, want 9", len(items))
	}
	// listing is deterministic
	again := c.Items()
	for i := range items {
		if items[i] != again[i] {
			t.Errorf("item %d differs between listings: %+v vs %+v", i, items[i], again[i])
		}
	}
}

func TestGet(t *testing.T) {
	c := Default()

	it, ok := c.Get(1)
	if !ok {
		t.Fatal("Get(1) not found")
	}
	if it.Name != "CAFFE LATTE" || it.Price != 339.9 {
		t.Errorf("Get(1) = %+v, want CAFFE LATTE at 339.9", it)
	}

	if _, ok := c.Get(42); ok {
		t.Error("Get(42) found, want not found")
	}
}

func TestItemsIsACopy(t *testing.T) {
	c := Default()
	items := c.Items()
	items[0].Price = 1
	if it, _ := c.Get(items[0].ID); it.Price == 1 {
		t.Error("mutating the returned slice changed the catalog")
	}
}
