package models

// Category groups menu items
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MenuItem is one catalog entry. Price is in minor currency units; changing
// it never affects already-created orders, which keep their snapshot.
type MenuItem struct {
	ID         int    `json:"id"`
	CategoryID *int   `json:"category_id,omitempty"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Available  bool   `json:"available"`
}

// MenuItemRequest is the create/update payload for a menu item
type MenuItemRequest struct {
	CategoryID *int   `json:"category_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Available  *bool  `json:"available"`
}

// Validate checks the menu item payload
func (req *MenuItemRequest) Validate() error {
	if req.Name == "" {
		return newArgErr("name is required")
	}
	if req.Price <= 0 {
		return newArgErr("price must be greater than 0")
	}
	return nil
}
