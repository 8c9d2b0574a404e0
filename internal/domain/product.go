package domain

type Product struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	CategoryName string   `json:"categoryName"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	Images       []string `json:"images"`
	IsFeatured   bool     `json:"isFeatured"`
}

// ProductDraft is the client-side payload for create and update requests.
// Images carry base64-encoded uploads; the server replaces them with stored
// references on the returned Product.
type ProductDraft struct {
	Name         string   `json:"name"`
	CategoryName string   `json:"categoryName"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	Images       []string `json:"base64Images"`
	IsFeatured   bool     `json:"isFeatured"`
}
