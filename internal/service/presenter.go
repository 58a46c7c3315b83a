package service

import (
	"hbnb/internal/entities"
	"hbnb/internal/models"
)

// Presenter turns entities into response models, inlining related entities
// through the facade. References that no longer resolve are left out.
type Presenter struct {
	facade HBnBFacade
}

// NewPresenter builds a Presenter that resolves references through facade
func NewPresenter(facade HBnBFacade) *Presenter {
	return &Presenter{facade: facade}
}

// User renders a user without its password hash
func (p *Presenter) User(u *entities.User) models.UserResponse {
	return models.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: entities.FormatTimestamp(u.CreatedAt),
		UpdatedAt: entities.FormatTimestamp(u.UpdatedAt),
	}
}

// Users renders each user in order
func (p *Presenter) Users(users []*entities.User) []models.UserResponse {
	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, p.User(u))
	}
	return out
}

// Amenity renders an amenity
func (p *Presenter) Amenity(a *entities.Amenity) models.AmenityResponse {
	return models.AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: entities.FormatTimestamp(a.CreatedAt),
		UpdatedAt: entities.FormatTimestamp(a.UpdatedAt),
	}
}

// Amenities renders each amenity in order
func (p *Presenter) Amenities(amenities []*entities.Amenity) []models.AmenityResponse {
	out := make([]models.AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, p.Amenity(a))
	}
	return out
}

// Place expands owner, amenities and reviews
func (p *Presenter) Place(place *entities.Place) models.PlaceResponse {
	resp := models.PlaceResponse{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID,
		Amenities:   make([]models.AmenitySummary, 0, len(place.Amenities)),
		Reviews:     make([]models.ReviewSummary, 0, len(place.Reviews)),
		CreatedAt:   entities.FormatTimestamp(place.CreatedAt),
		UpdatedAt:   entities.FormatTimestamp(place.UpdatedAt),
	}

	if owner, ok := p.facade.GetUser(place.OwnerID); ok {
		resp.Owner = userSummary(owner)
	}

	for _, amenityID := range place.Amenities {
		if amenity, ok := p.facade.GetAmenity(amenityID); ok {
			resp.Amenities = append(resp.Amenities, models.AmenitySummary{ID: amenity.ID, Name: amenity.Name})
		}
	}

	for _, reviewID := range place.Reviews {
		if review, ok := p.facade.GetReview(reviewID); ok {
			resp.Reviews = append(resp.Reviews, models.ReviewSummary{
				ID:     review.ID,
				Text:   review.Text,
				Rating: review.Rating,
				UserID: review.UserID,
			})
		}
	}

	return resp
}

// Places expands each place in order
func (p *Presenter) Places(places []*entities.Place) []models.PlaceResponse {
	out := make([]models.PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, p.Place(place))
	}
	return out
}

// Review expands the author and the reviewed place
func (p *Presenter) Review(r *entities.Review) models.ReviewResponse {
	resp := models.ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: entities.FormatTimestamp(r.CreatedAt),
		UpdatedAt: entities.FormatTimestamp(r.UpdatedAt),
	}

	if user, ok := p.facade.GetUser(r.UserID); ok {
		resp.User = userSummary(user)
	}
	if place, ok := p.facade.GetPlace(r.PlaceID); ok {
		resp.Place = &models.PlaceSummary{ID: place.ID, Title: place.Title}
	}

	return resp
}

// Reviews expands each review in order
func (p *Presenter) Reviews(reviews []*entities.Review) []models.ReviewResponse {
	out := make([]models.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, p.Review(r))
	}
	return out
}

func userSummary(u *entities.User) *models.UserSummary {
	return &models.UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
