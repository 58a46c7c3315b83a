package service

import (
	"sync"

	"github.com/rs/zerolog"

	"hbnb/internal/apperror"
	"hbnb/internal/entities"
	"hbnb/internal/repository"
)

// HBnBFacade is the single entry point for every read and mutation of users,
// amenities, places and reviews. It owns the cross-entity rules.
type HBnBFacade interface {
	CreateUser(fields entities.Fields) (*entities.User, error)
	GetUser(userID string) (*entities.User, bool)
	GetUserByEmail(email string) (*entities.User, bool)
	GetAllUsers() []*entities.User
	UpdateUser(userID string, fields entities.Fields) (*entities.User, bool, error)

	CreateAmenity(fields entities.Fields) (*entities.Amenity, error)
	GetAmenity(amenityID string) (*entities.Amenity, bool)
	GetAllAmenities() []*entities.Amenity
	UpdateAmenity(amenityID string, fields entities.Fields) (*entities.Amenity, bool, error)

	CreatePlace(fields entities.Fields) (*entities.Place, error)
	GetPlace(placeID string) (*entities.Place, bool)
	GetAllPlaces() []*entities.Place
	UpdatePlace(placeID string, fields entities.Fields) (*entities.Place, bool, error)

	CreateReview(fields entities.Fields) (*entities.Review, error)
	GetReview(reviewID string) (*entities.Review, bool)
	GetAllReviews() []*entities.Review
	GetReviewsByPlace(placeID string) []*entities.Review
	UpdateReview(reviewID string, fields entities.Fields) (*entities.Review, bool, error)
	DeleteReview(reviewID string) bool
}

// Stores groups the per-entity repositories injected into the facade
type Stores struct {
	Users     repository.UserRepository
	Amenities repository.AmenityRepository
	Places    repository.PlaceRepository
	Reviews   repository.ReviewRepository
}

// NewInMemoryStores creates a fresh set of empty repositories
func NewInMemoryStores() Stores {
	return Stores{
		Users:     repository.NewUserRepository(),
		Amenities: repository.NewAmenityRepository(),
		Places:    repository.NewPlaceRepository(),
		Reviews:   repository.NewReviewRepository(),
	}
}

// Fields stripped from update payloads before they reach the entity
var (
	userRestricted    = []string{"id", "created_at", "password"}
	amenityRestricted = []string{"id", "created_at"}
	placeRestricted   = []string{"id", "created_at", "owner_id"}
	reviewRestricted  = []string{"id", "created_at", "place_id", "user_id"}
)

type hbnbFacade struct {
	mu     sync.RWMutex
	stores Stores
	log    zerolog.Logger
}

// NewHBnBFacade creates a facade over the given stores. Every operation holds
// the facade lock, so concurrent requests see one mutation at a time.
// Returned entities are copies; mutating them does not change storage.
func NewHBnBFacade(stores Stores, logger zerolog.Logger) HBnBFacade {
	return &hbnbFacade{
		stores: stores,
		log:    logger.With().Str("component", "facade").Logger(),
	}
}

// CreateUser stores a new user after checking the email is not taken
func (f *hbnbFacade) CreateUser(fields entities.Fields) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if email, ok := fields["email"]; ok && len(f.stores.Users.FilterByAttribute("email", email)) > 0 {
		f.log.Info().Interface("email", email).Msg("user creation rejected: email already registered")
		return nil, apperror.NewConflictError("User", "email", email)
	}

	user, err := entities.NewUser(fields)
	if err != nil {
		return nil, err
	}
	if err := f.stores.Users.Add(user); err != nil {
		return nil, err
	}

	f.log.Debug().Str("user_id", user.ID).Msg("user created")
	return user.Clone(), nil
}

func (f *hbnbFacade) GetUser(userID string) (*entities.User, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	user, ok := f.stores.Users.Get(userID)
	if !ok {
		return nil, false
	}
	return user.Clone(), true
}

func (f *hbnbFacade) GetUserByEmail(email string) (*entities.User, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	users := f.stores.Users.FilterByAttribute("email", email)
	if len(users) == 0 {
		return nil, false
	}
	return users[0].Clone(), true
}

func (f *hbnbFacade) GetAllUsers() []*entities.User {
	f.mu.RLock()
	defer f.mu.RUnlock()

	users := f.stores.Users.ListAll()
	out := make([]*entities.User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}

// UpdateUser applies fields to an existing user. An email change is checked
// against every other user. id, created_at and password are never written.
func (f *hbnbFacade) UpdateUser(userID string, fields entities.Fields) (*entities.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.stores.Users.Get(userID)
	if !ok {
		return nil, false, nil
	}

	if email, ok := fields["email"]; ok && email != stored.Email {
		for _, other := range f.stores.Users.FilterByAttribute("email", email) {
			if other.ID != userID {
				f.log.Info().Str("user_id", userID).Interface("email", email).
					Msg("user update rejected: email already registered")
				return nil, true, apperror.NewConflictError("User", "email", email)
			}
		}
	}

	user := stored.Clone()
	if err := user.Update(fields.Without(userRestricted...)); err != nil {
		return nil, true, err
	}
	if err := f.stores.Users.Add(user); err != nil {
		return nil, true, err
	}

	f.log.Debug().Str("user_id", userID).Msg("user updated")
	return user.Clone(), true, nil
}

func (f *hbnbFacade) CreateAmenity(fields entities.Fields) (*entities.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amenity, err := entities.NewAmenity(fields)
	if err != nil {
		return nil, err
	}
	if err := f.stores.Amenities.Add(amenity); err != nil {
		return nil, err
	}

	f.log.Debug().Str("amenity_id", amenity.ID).Msg("amenity created")
	return amenity.Clone(), nil
}

func (f *hbnbFacade) GetAmenity(amenityID string) (*entities.Amenity, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	amenity, ok := f.stores.Amenities.Get(amenityID)
	if !ok {
		return nil, false
	}
	return amenity.Clone(), true
}

func (f *hbnbFacade) GetAllAmenities() []*entities.Amenity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	amenities := f.stores.Amenities.ListAll()
	out := make([]*entities.Amenity, len(amenities))
	for i, a := range amenities {
		out[i] = a.Clone()
	}
	return out
}

func (f *hbnbFacade) UpdateAmenity(amenityID string, fields entities.Fields) (*entities.Amenity, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.stores.Amenities.Get(amenityID)
	if !ok {
		return nil, false, nil
	}

	amenity := stored.Clone()
	if err := amenity.Update(fields.Without(amenityRestricted...)); err != nil {
		return nil, true, err
	}
	if err := f.stores.Amenities.Add(amenity); err != nil {
		return nil, true, err
	}

	f.log.Debug().Str("amenity_id", amenityID).Msg("amenity updated")
	return amenity.Clone(), true, nil
}

// CreatePlace stores a new place for an existing owner. Amenity ids that do
// not resolve are dropped without error.
func (f *hbnbFacade) CreatePlace(fields entities.Fields) (*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ownerID, _ := fields["owner_id"].(string)
	if _, ok := f.stores.Users.Get(ownerID); !ok {
		f.log.Info().Str("owner_id", ownerID).Msg("place creation rejected: owner not found")
		return nil, apperror.NewNotFoundError("Owner", ownerID)
	}

	var amenityIDs []string
	if raw, ok := fields["amenities"]; ok {
		ids, err := entities.ValidateIDList(raw, "amenities")
		if err != nil {
			return nil, err
		}
		amenityIDs = ids
	}

	place, err := entities.NewPlace(fields)
	if err != nil {
		return nil, err
	}
	f.attachAmenities(place, amenityIDs)

	if err := f.stores.Places.Add(place); err != nil {
		return nil, err
	}

	f.log.Debug().Str("place_id", place.ID).Str("owner_id", ownerID).Msg("place created")
	return place.Clone(), nil
}

// attachAmenities adds every id that resolves to a stored amenity
func (f *hbnbFacade) attachAmenities(place *entities.Place, amenityIDs []string) {
	for _, amenityID := range amenityIDs {
		if _, ok := f.stores.Amenities.Get(amenityID); ok {
			place.AddAmenity(amenityID)
		}
	}
}

func (f *hbnbFacade) GetPlace(placeID string) (*entities.Place, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, ok := f.stores.Places.Get(placeID)
	if !ok {
		return nil, false
	}
	return place.Clone(), true
}

func (f *hbnbFacade) GetAllPlaces() []*entities.Place {
	f.mu.RLock()
	defer f.mu.RUnlock()

	places := f.stores.Places.ListAll()
	out := make([]*entities.Place, len(places))
	for i, p := range places {
		out[i] = p.Clone()
	}
	return out
}

// UpdatePlace applies scalar fields and, when "amenities" is present,
// replaces the whole amenity membership with the ids that resolve.
func (f *hbnbFacade) UpdatePlace(placeID string, fields entities.Fields) (*entities.Place, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.stores.Places.Get(placeID)
	if !ok {
		return nil, false, nil
	}

	fields = fields.Without(placeRestricted...)
	place := stored.Clone()

	if raw, ok := fields["amenities"]; ok {
		amenityIDs, err := entities.ValidateIDList(raw, "amenities")
		if err != nil {
			return nil, true, err
		}
		place.ClearAmenities()
		f.attachAmenities(place, amenityIDs)
		delete(fields, "amenities")
	}

	if err := place.Update(fields); err != nil {
		return nil, true, err
	}
	if err := f.stores.Places.Add(place); err != nil {
		return nil, true, err
	}

	f.log.Debug().Str("place_id", placeID).Msg("place updated")
	return place.Clone(), true, nil
}

// CreateReview stores a review and appends it to its place. The place and the
// author must exist and the author must not own the place.
func (f *hbnbFacade) CreateReview(fields entities.Fields) (*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	placeID, _ := fields["place_id"].(string)
	storedPlace, ok := f.stores.Places.Get(placeID)
	if !ok {
		f.log.Info().Str("place_id", placeID).Msg("review creation rejected: place not found")
		return nil, apperror.NewNotFoundError("Place", placeID)
	}

	userID, _ := fields["user_id"].(string)
	if _, ok := f.stores.Users.Get(userID); !ok {
		f.log.Info().Str("user_id", userID).Msg("review creation rejected: user not found")
		return nil, apperror.NewNotFoundError("User", userID)
	}

	if storedPlace.OwnerID == userID {
		f.log.Info().Str("place_id", placeID).Str("user_id", userID).
			Msg("review creation rejected: owner reviewing own place")
		return nil, apperror.NewBusinessError("self_review", "You cannot review your own place")
	}

	review, err := entities.NewReview(fields)
	if err != nil {
		return nil, err
	}

	place := storedPlace.Clone()
	place.AddReview(review.ID)

	if err := f.stores.Reviews.Add(review); err != nil {
		return nil, err
	}
	if err := f.stores.Places.Add(place); err != nil {
		f.stores.Reviews.Delete(review.ID)
		return nil, err
	}

	f.log.Debug().Str("review_id", review.ID).Str("place_id", placeID).Msg("review created")
	return review.Clone(), nil
}

func (f *hbnbFacade) GetReview(reviewID string) (*entities.Review, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	review, ok := f.stores.Reviews.Get(reviewID)
	if !ok {
		return nil, false
	}
	return review.Clone(), true
}

func (f *hbnbFacade) GetAllReviews() []*entities.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneReviews(f.stores.Reviews.ListAll())
}

// GetReviewsByPlace returns an empty slice when the place has no reviews
func (f *hbnbFacade) GetReviewsByPlace(placeID string) []*entities.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneReviews(f.stores.Reviews.FilterByAttribute("place_id", placeID))
}

func (f *hbnbFacade) UpdateReview(reviewID string, fields entities.Fields) (*entities.Review, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.stores.Reviews.Get(reviewID)
	if !ok {
		return nil, false, nil
	}

	review := stored.Clone()
	if err := review.Update(fields.Without(reviewRestricted...)); err != nil {
		return nil, true, err
	}
	if err := f.stores.Reviews.Add(review); err != nil {
		return nil, true, err
	}

	f.log.Debug().Str("review_id", reviewID).Msg("review updated")
	return review.Clone(), true, nil
}

// DeleteReview removes the review from its place's review list and from storage
func (f *hbnbFacade) DeleteReview(reviewID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	review, ok := f.stores.Reviews.Get(reviewID)
	if !ok {
		return false
	}

	if stored, ok := f.stores.Places.Get(review.PlaceID); ok {
		place := stored.Clone()
		place.RemoveReview(reviewID)
		if err := f.stores.Places.Add(place); err != nil {
			f.log.Error().Err(err).Str("place_id", review.PlaceID).Msg("failed to prune review from place")
			return false
		}
	}

	deleted := f.stores.Reviews.Delete(reviewID)
	if deleted {
		f.log.Debug().Str("review_id", reviewID).Msg("review deleted")
	}
	return deleted
}

func cloneReviews(reviews []*entities.Review) []*entities.Review {
	out := make([]*entities.Review, len(reviews))
	for i, r := range reviews {
		out[i] = r.Clone()
	}
	return out
}
