package domain

// Category is a product grouping managed from the admin panel. The server
// assigns the identifier on creation; it never changes afterwards.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"category"`
	Image string `json:"categoryImage,omitempty"`
}

// CategoryDraft is the client-side payload for create and update requests.
type CategoryDraft struct {
	Name  string `json:"category"`
	Image string `json:"categoryImage,omitempty"`
}
