package models

// OrderStatus is the backend-owned order state. The client renders it but
// never transitions it locally.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCanceled  OrderStatus = "canceled"
	OrderDelivered OrderStatus = "delivered"
)

// Label returns the display text for a status, falling back to the raw value
// for statuses this client does not know about.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderCanceled:
		return "Canceled"
	case OrderDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// Color returns the indicator color used when rendering the status.
func (s OrderStatus) Color() string {
	switch s {
	case OrderPending:
		return "yellow"
	case OrderCanceled:
		return "red"
	case OrderDelivered:
		return "green"
	default:
		return "gray"
	}
}

// OrderLine is a cart line snapshotted into an order at submission time.
type OrderLine struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the payload sent to (and, in the admin view, read back from)
// the remote order collection.
type Order struct {
	ID        string      `json:"_id,omitempty"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Area      string      `json:"area"`
	Products  []OrderLine `json:"products"`
	Subtotal  float64     `json:"subtotal"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt string      `json:"createdAt,omitempty"`
}
