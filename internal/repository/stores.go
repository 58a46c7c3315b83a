package repository

import "hbnb/internal/entities"

type (
	UserRepository    = Repository[*entities.User]
	AmenityRepository = Repository[*entities.Amenity]
	PlaceRepository   = Repository[*entities.Place]
	ReviewRepository  = Repository[*entities.Review]
)

// NewUserRepository creates an empty user store
func NewUserRepository() UserRepository {
	return NewInMemoryRepository[*entities.User]()
}

// NewAmenityRepository creates an empty amenity store
func NewAmenityRepository() AmenityRepository {
	return NewInMemoryRepository[*entities.Amenity]()
}

// NewPlaceRepository creates an empty place store
func NewPlaceRepository() PlaceRepository {
	return NewInMemoryRepository[*entities.Place]()
}

// NewReviewRepository creates an empty review store
func NewReviewRepository() ReviewRepository {
	return NewInMemoryRepository[*entities.Review]()
}
