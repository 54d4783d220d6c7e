package entity

// RoomInventoryItem is the inventory configuration for one room type. The
// calendarDate field is a date range such as "[2021-02-02,)".
type RoomInventoryItem struct {
	CalendarDate string `json:"calendarDate"`
	Inventory    int    `json:"inventory"`
	InventoryOOI int    `json:"inventoryOOI"`
	InventoryOOO int    `json:"inventoryOOO"`
	RoomCode     string `json:"roomCode"`
}

// RoomInventoryData is the inventory artifact for a property.
type RoomInventoryData struct {
	RoomInventory []RoomInventoryItem `json:"roomInventory"`
}
