package domain

import "time"

// Customer is the subset of the buying user embedded in an order payload.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderItem is a line item snapshot taken when the order was placed.
type OrderItem struct {
	ProductID     string  `json:"productID"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Total         float64 `json:"totalPrice"`
}

// Order is created by the storefront ordering flow; the admin panel only
// reads it and moves it through the status lifecycle. TotalAmount is the sum
// of line totals at creation time and is never recomputed here.
type Order struct {
	OrderID     string      `json:"orderID"`
	CreatedAt   time.Time   `json:"createdAt"`
	Customer    Customer    `json:"userID"`
	Items       []OrderItem `json:"products"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	IsCancelled bool        `json:"isCancelled"`
}

// OrderList is the detailed listing response shape.
type OrderList struct {
	Orders      []Order `json:"orders"`
	TotalOrders int     `json:"totalOrders"`
}

// DisplayStatus resolves the status to show for an order. Older payloads
// carry no status string and encode cancellation as a flag only.
func (o Order) DisplayStatus() OrderStatus {
	if o.Status != "" {
		return o.Status
	}
	if o.IsCancelled {
		return StatusCancelled
	}
	return StatusPlaced
}

// ItemsTotal sums the line totals. Used for display alongside TotalAmount,
// which stays whatever the server reported at creation.
func (o Order) ItemsTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Total
	}
	return sum
}
