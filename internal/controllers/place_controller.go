package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/service"
)

type PlaceController struct {
	facade    service.HBnBFacade
	presenter *service.Presenter
}

func NewPlaceController(facade service.HBnBFacade, presenter *service.Presenter) *PlaceController {
	return &PlaceController{
		facade:    facade,
		presenter: presenter,
	}
}

// ListPlaces handles GET /api/v1/places/
func (pc *PlaceController) ListPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, pc.presenter.Places(pc.facade.GetAllPlaces()))
}

// CreatePlace handles POST /api/v1/places/
func (pc *PlaceController) CreatePlace(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	place, err := pc.facade.CreatePlace(fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pc.presenter.Place(place))
}

// GetPlace handles GET /api/v1/places/:place_id
func (pc *PlaceController) GetPlace(c *gin.Context) {
	place, ok := pc.facade.GetPlace(c.Param("place_id"))
	if !ok {
		notFound(c, "Place")
		return
	}

	c.JSON(http.StatusOK, pc.presenter.Place(place))
}

// UpdatePlace handles PUT /api/v1/places/:place_id
func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	place, found, err := pc.facade.UpdatePlace(c.Param("place_id"), fields)
	if !found {
		notFound(c, "Place")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pc.presenter.Place(place))
}

// ListPlaceReviews handles GET /api/v1/places/:place_id/reviews and
// GET /api/v1/reviews/places/:place_id
func (pc *PlaceController) ListPlaceReviews(c *gin.Context) {
	placeID := c.Param("place_id")
	if _, ok := pc.facade.GetPlace(placeID); !ok {
		notFound(c, "Place")
		return
	}

	c.JSON(http.StatusOK, pc.presenter.Reviews(pc.facade.GetReviewsByPlace(placeID)))
}
