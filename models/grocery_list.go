package models

import (
	"encoding/json"
	"fmt"
)

// ListItem is a single line item on a grocery list.
type ListItem struct {
	// Name is the product name, e.g. "milk".
	Name string `json:"name"`

	// Quantity is the number of units to buy.
	Quantity int `json:"quantity"`
}

// GroceryList represents one persisted list row. Items are stored in a single
// text column as a JSON array; encoding and decoding go through EncodeItems
// and DecodeItems so every row holds the same canonical representation.
type GroceryList struct {
	// ID is the internal unique identifier of the list row.
	ID int64 `json:"id"`

	// OwnerID references the user that created the list.
	// It is set once at creation and never changes.
	OwnerID int64 `json:"owner_id"`

	// Items is the ordered sequence of line items on the list.
	Items []ListItem `json:"items"`
}

// TableName returns the name of the database table
// associated with the GroceryList model.
func (g GroceryList) TableName() string {
	return "grocery_lists"
}

// EncodeItems serializes an item sequence to the persisted text form.
// The encoding is a lossless, order-preserving JSON array so that
// DecodeItems(EncodeItems(v)) always yields v.
func EncodeItems(items []ListItem) (string, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("error encoding list items: %w", err)
	}

	return string(encoded), nil
}

// DecodeItems parses the persisted text form back into an item sequence.
// A blob that is not valid JSON, or whose top-level value is not an array,
// yields an error; callers reading multiple rows treat such rows as corrupt.
func DecodeItems(raw string) ([]ListItem, error) {
	var items []ListItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("error decoding list items: %w", err)
	}

	// JSON null passes Unmarshal but is not an item sequence.
	if items == nil {
		return nil, fmt.Errorf("error decoding list items: value is not a sequence")
	}

	return items, nil
}
