package orders

import "github.com/apnacafe/backend/internal/catalog"

// Customer is the transient buyer detail attached to an order request.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Line is one cart line of an order request. The price charged is the one on
// the line at the time of ordering.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Total sums price*quantity over the lines. Computed here in the service
// layer, not re-derived from the persisted rows.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}
