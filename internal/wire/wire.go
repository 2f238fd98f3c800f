// Package wire holds the JSON shapes shared by the HTTP handlers and the
// remote client adapter.
package wire

// Item is one entry on a shopping list.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	AddedAt   string `json:"addedAt"`
}

// ShoppingList is the full record shape returned by create/get/update.
type ShoppingList struct {
	Awid      string `json:"awid"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	State     string `json:"state"`
	OwnerID   string `json:"ownerId"`
	Items     []Item `json:"items"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListSummary is the slimmed-down shape used by myList; items are collapsed
// to a count.
type ListSummary struct {
	Awid      string `json:"awid"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	OwnerID   string `json:"ownerId"`
	ItemCount int    `json:"itemCount"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type PageInfo struct {
	PageIndex  int `json:"pageIndex"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SummaryPage is the myList response body.
type SummaryPage struct {
	ItemList []ListSummary `json:"itemList"`
	PageInfo PageInfo      `json:"pageInfo"`
}

// ListPage is the backend-facing page shape: full records plus paging info.
// The remote adapter widens summaries into records with empty items.
type ListPage struct {
	ItemList []ShoppingList `json:"itemList"`
	PageInfo PageInfo       `json:"pageInfo"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Awid    string `json:"awid"`
}

// Error envelope. Every failure response carries errorMap keyed by kind.
const (
	KindValidation       = "validationError"
	KindNotFound         = "shoppingListNotFound"
	KindUnauthorized     = "unauthorizedAccess"
	KindServerError      = "serverError"
	KindEndpointNotFound = "endpointNotFound"
)

type ErrorDetail struct {
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	ParamMap map[string]any `json:"paramMap"`
}

type ErrorEnvelope struct {
	ErrorMap map[string]ErrorDetail `json:"errorMap"`
}

// NewError builds a single-entry envelope.
func NewError(kind, message string, paramMap map[string]any) ErrorEnvelope {
	if paramMap == nil {
		paramMap = map[string]any{}
	}
	return ErrorEnvelope{ErrorMap: map[string]ErrorDetail{
		kind: {Type: "error", Message: message, ParamMap: paramMap},
	}}
}

// First returns an arbitrary entry from the envelope, favoring the known
// kinds in a stable order so clients surface the most specific message.
func (e ErrorEnvelope) First() (string, ErrorDetail, bool) {
	for _, kind := range []string{KindValidation, KindNotFound, KindUnauthorized, KindEndpointNotFound, KindServerError} {
		if d, ok := e.ErrorMap[kind]; ok {
			return kind, d, true
		}
	}
	for kind, d := range e.ErrorMap {
		return kind, d, true
	}
	return "", ErrorDetail{}, false
}
