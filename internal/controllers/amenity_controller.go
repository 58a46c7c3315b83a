package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/service"
)

type AmenityController struct {
	facade    service.HBnBFacade
	presenter *service.Presenter
}

func NewAmenityController(facade service.HBnBFacade, presenter *service.Presenter) *AmenityController {
	return &AmenityController{
		facade:    facade,
		presenter: presenter,
	}
}

func (ac *AmenityController) ListAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, ac.presenter.Amenities(ac.facade.GetAllAmenities()))
}

func (ac *AmenityController) CreateAmenity(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	amenity, err := ac.facade.CreateAmenity(fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ac.presenter.Amenity(amenity))
}

func (ac *AmenityController) GetAmenity(c *gin.Context) {
	amenity, ok := ac.facade.GetAmenity(c.Param("amenity_id"))
	if !ok {
		notFound(c, "Amenity")
		return
	}

	c.JSON(http.StatusOK, ac.presenter.Amenity(amenity))
}

func (ac *AmenityController) UpdateAmenity(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	amenity, found, err := ac.facade.UpdateAmenity(c.Param("amenity_id"), fields)
	if !found {
		notFound(c, "Amenity")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ac.presenter.Amenity(amenity))
}
