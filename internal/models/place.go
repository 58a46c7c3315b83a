package models

// PlaceResponse expands owner, amenities and reviews.
// Owner is omitted when the owner no longer resolves.
type PlaceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	OwnerID     string           `json:"owner_id"`
	Owner       *UserSummary     `json:"owner,omitempty"`
	Amenities   []AmenitySummary `json:"amenities"`
	Reviews     []ReviewSummary  `json:"reviews"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// PlaceSummary is embedded in a review response
type PlaceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
