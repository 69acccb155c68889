package models

// Product is a catalogue entry as served by the remote backend.
// Immutable from this client's perspective; the gorm tags exist only for
// the local offline snapshot table.
type Product struct {
	ID          string  `json:"_id" gorm:"primaryKey;column:id"`
	Name        string  `json:"name" gorm:"size:255;index"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
	Image       string  `json:"image" gorm:"size:512"`
	Category    string  `json:"category" gorm:"size:100;index"`
}

// CartItem is a Product plus a quantity. Quantity is always >= 1 inside a
// cart; reaching 0 removes the item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price × quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
