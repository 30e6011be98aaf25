package domain

import "time"

// CartItem is a single purchasable asset as supplied by the client.
// Items are transient: they live in the checkout session cache and,
// best-effort, in the persisted order record.
type CartItem struct {
	Image    string  `json:"image" bson:"image"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order ties a provider-issued order id to the cart snapshot it was
// created from. Amount is in currency subunits (paise for INR).
type Order struct {
	OrderID   string     `json:"order_id" bson:"order_id"`
	Amount    int64      `json:"amount" bson:"amount"`
	Currency  string     `json:"currency" bson:"currency"`
	Items     []CartItem `json:"items" bson:"items"`
	Paid      bool       `json:"paid" bson:"paid"`
	PaymentID string     `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
