package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb/internal/entities"
	"hbnb/internal/service"
)

func TestPresenter_Place(t *testing.T) {
	f := newFacade()
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	wifi, err := f.CreateAmenity(entities.Fields{"name": "Wifi"})
	require.NoError(t, err)
	p := createPlace(t, f, owner.ID, wifi.ID)
	r := createReview(t, f, p.ID, guest.ID)

	place, _ := f.GetPlace(p.ID)
	resp := service.NewPresenter(f).Place(place)

	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, owner.ID, resp.OwnerID)
	require.NotNil(t, resp.Owner)
	assert.Equal(t, "owner@example.com", resp.Owner.Email)
	require.Len(t, resp.Amenities, 1)
	assert.Equal(t, "Wifi", resp.Amenities[0].Name)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, r.ID, resp.Reviews[0].ID)
	assert.Equal(t, guest.ID, resp.Reviews[0].UserID)
	assert.Equal(t, 5, resp.Reviews[0].Rating)
}

func TestPresenter_Review(t *testing.T) {
	f := newFacade()
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	p := createPlace(t, f, owner.ID)
	r := createReview(t, f, p.ID, guest.ID)

	resp := service.NewPresenter(f).Review(r)
	require.NotNil(t, resp.User)
	assert.Equal(t, guest.ID, resp.User.ID)
	require.NotNil(t, resp.Place)
	assert.Equal(t, "Loft", resp.Place.Title)
}

func TestPresenter_DanglingReferencesAreOmitted(t *testing.T) {
	stores := service.NewInMemoryStores()
	f := service.NewHBnBFacade(stores, zerolog.Nop())
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	wifi, err := f.CreateAmenity(entities.Fields{"name": "Wifi"})
	require.NoError(t, err)
	p := createPlace(t, f, owner.ID, wifi.ID)
	r := createReview(t, f, p.ID, guest.ID)

	// remove referenced records behind the facade's back
	stores.Users.Delete(owner.ID)
	stores.Users.Delete(guest.ID)
	stores.Amenities.Delete(wifi.ID)

	presenter := service.NewPresenter(f)
	place, _ := f.GetPlace(p.ID)
	placeResp := presenter.Place(place)
	assert.Nil(t, placeResp.Owner)
	assert.Empty(t, placeResp.Amenities)
	assert.NotNil(t, placeResp.Amenities)
	assert.Len(t, placeResp.Reviews, 1)

	stores.Places.Delete(p.ID)
	reviewResp := presenter.Review(r)
	assert.Nil(t, reviewResp.User)
	assert.Nil(t, reviewResp.Place)
	assert.Equal(t, p.ID, reviewResp.PlaceID)
}

func TestPresenter_UserHasNoPassword(t *testing.T) {
	f := newFacade()
	u := createUser(t, f, "ada@example.com")

	resp := service.NewPresenter(f).User(u)
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, entities.FormatTimestamp(u.CreatedAt), resp.CreatedAt)
}
