package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/service"
)

type ReviewController struct {
	facade    service.HBnBFacade
	presenter *service.Presenter
}

func NewReviewController(facade service.HBnBFacade, presenter *service.Presenter) *ReviewController {
	return &ReviewController{
		facade:    facade,
		presenter: presenter,
	}
}

func (rc *ReviewController) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, rc.presenter.Reviews(rc.facade.GetAllReviews()))
}

// CreateReview handles POST /api/v1/reviews/
func (rc *ReviewController) CreateReview(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	review, err := rc.facade.CreateReview(fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rc.presenter.Review(review))
}

func (rc *ReviewController) GetReview(c *gin.Context) {
	review, ok := rc.facade.GetReview(c.Param("review_id"))
	if !ok {
		notFound(c, "Review")
		return
	}

	c.JSON(http.StatusOK, rc.presenter.Review(review))
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	review, found, err := rc.facade.UpdateReview(c.Param("review_id"), fields)
	if !found {
		notFound(c, "Review")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rc.presenter.Review(review))
}

// DeleteReview handles DELETE /api/v1/reviews/:review_id
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	if !rc.facade.DeleteReview(c.Param("review_id")) {
		notFound(c, "Review")
		return
	}

	c.Status(http.StatusNoContent)
}
