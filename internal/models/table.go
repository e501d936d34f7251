package models

// Location represents a café branch
type Location struct {
	ID      int    `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Table represents one physical table. Status is a derived signal: order
// creation flips it to occupied; every other transition is an explicit
// administrative action.
type Table struct {
	ID          int         `json:"id"`
	LocationID  int         `json:"location_id"`
	TableNumber int         `json:"table_number"`
	Status      TableStatus `json:"status"`
}
