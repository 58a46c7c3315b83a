package models

type ReviewResponse struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Rating    int           `json:"rating"`
	PlaceID   string        `json:"place_id"`
	UserID    string        `json:"user_id"`
	User      *UserSummary  `json:"user,omitempty"`
	Place     *PlaceSummary `json:"place,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// ReviewSummary is embedded in a place response
type ReviewSummary struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id"`
}
