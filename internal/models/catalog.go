package models

// Catalog is the fixed menu of burritos the form offers. Item names double
// as the keys of an order's burritoOrders map, so renaming an entry here is
// a breaking change for the sheet history.
var Catalog = []string{
	"Bean & Cheese Burrito",
	"Carnitas Burrito",
	"Carne Asada Burrito",
	"Chicken Burrito",
	"Veggie Burrito",
	"Breakfast Burrito",
}

func InCatalog(name string) bool {
	for _, item := range Catalog {
		if item == name {
			return true
		}
	}
	return false
}
