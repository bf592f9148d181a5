package catalog

import "github.com/nconklindev/stockcell/internal/types"

// SampleProducts is the demo inventory shown before any file is loaded.
func SampleProducts() []types.Product {
	return []types.Product{
		{ID: "1", Name: "Samsung Galaxy smartphone", Article: "SM-001", Zone: types.ZoneA, Cell: "A-12", Quantity: 45},
		{ID: "2", Name: "Lenovo ThinkPad laptop", Article: "LP-003", Zone: types.ZoneA, Cell: "A-08", Quantity: 12},
		{ID: "3", Name: "Sony WH-1000 headphones", Article: "SN-045", Zone: types.ZoneB, Cell: "B-23", Quantity: 78},
		{ID: "4", Name: "Logitech MX keyboard", Article: "LG-012", Zone: types.ZoneB, Cell: "B-15", Quantity: 34},
		{ID: "5", Name: "Dell UltraSharp monitor", Article: "DL-089", Zone: types.ZoneC, Cell: "C-05", Quantity: 19},
		{ID: "6", Name: "Razer DeathAdder mouse", Article: "RZ-023", Zone: types.ZoneC, Cell: "C-31", Quantity: 56},
		{ID: "7", Name: "Apple iPad Pro tablet", Article: "AP-007", Zone: types.ZoneD, Cell: "D-17", Quantity: 23},
		{ID: "8", Name: "TP-Link Archer router", Article: "TP-056", Zone: types.ZoneD, Cell: "D-09", Quantity: 41},
	}
}
