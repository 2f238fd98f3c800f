package domain

import "encoding/json"

// Record lifecycle. A deleted list stays in the store but is invisible to
// every read; there is no way back from deleted.
const (
	StateActive   = "active"
	StateArchived = "archived"
	StateDeleted  = "deleted"
)

// DefaultCategory is the sentinel used when a list is created without one.
const DefaultCategory = "Obecné"

const (
	NameMaxLen     = 100
	CategoryMaxLen = 50
)

type ListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	AddedAt   string `json:"addedAt"`
}

type ShoppingList struct {
	ID        string `db:"id"`
	Awid      string `db:"awid"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	State     string `db:"state"`
	OwnerID   string `db:"owner_id"`
	ItemsJSON string `db:"items_json"`
	Done      bool   `db:"done"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// Items decodes the stored item document. A missing or malformed document
// reads as an empty list rather than an error.
func (l *ShoppingList) Items() []ListItem {
	if l.ItemsJSON == "" {
		return []ListItem{}
	}
	var items []ListItem
	if err := json.Unmarshal([]byte(l.ItemsJSON), &items); err != nil {
		return []ListItem{}
	}
	return items
}

// SetItems replaces the stored item document wholesale.
func (l *ShoppingList) SetItems(items []ListItem) {
	if items == nil {
		items = []ListItem{}
	}
	b, _ := json.Marshal(items)
	l.ItemsJSON = string(b)
}
