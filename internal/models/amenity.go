package models

type AmenityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AmenitySummary is embedded in a place response
type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
