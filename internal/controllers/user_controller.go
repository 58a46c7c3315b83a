package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/service"
)

type UserController struct {
	facade    service.HBnBFacade
	presenter *service.Presenter
}

func NewUserController(facade service.HBnBFacade, presenter *service.Presenter) *UserController {
	return &UserController{
		facade:    facade,
		presenter: presenter,
	}
}

// ListUsers handles GET /api/v1/users/
func (uc *UserController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, uc.presenter.Users(uc.facade.GetAllUsers()))
}

// CreateUser handles POST /api/v1/users/
func (uc *UserController) CreateUser(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	user, err := uc.facade.CreateUser(fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, uc.presenter.User(user))
}

// GetUser handles GET /api/v1/users/:user_id
func (uc *UserController) GetUser(c *gin.Context) {
	user, ok := uc.facade.GetUser(c.Param("user_id"))
	if !ok {
		notFound(c, "User")
		return
	}

	c.JSON(http.StatusOK, uc.presenter.User(user))
}

// UpdateUser handles PUT /api/v1/users/:user_id
func (uc *UserController) UpdateUser(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	user, found, err := uc.facade.UpdateUser(c.Param("user_id"), fields)
	if !found {
		notFound(c, "User")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, uc.presenter.User(user))
}
