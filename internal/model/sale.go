package model

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

// SaleItem is a frozen line-item snapshot. It copies the product's name and
// price at checkout time and never tracks the live inventory item afterwards.
type SaleItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Sale is a completed transaction. Once written it is immutable.
type Sale struct {
	ID            int           `json:"id"`
	Timestamp     string        `json:"timestamp"`
	Items         []SaleItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	HST           float64       `json:"hst"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentAmount float64       `json:"paymentAmount"`
}

// SalesRecord holds the current trading day's sales and the id counter for
// the next sale. The counter resets to 1 when the day closes.
type SalesRecord struct {
	DailySales []Sale `json:"dailySales"`
	NextID     int    `json:"nextId"`
}

// SalesHistoryEntry archives one closed trading day: the day's sales plus the
// inventory snapshot taken at close.
type SalesHistoryEntry struct {
	Date      string          `json:"date"`
	Sales     []Sale          `json:"sales"`
	Inventory []InventoryItem `json:"inventory"`
}
