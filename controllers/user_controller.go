package controllers

import (
	"net/http"

	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// GET /user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.Users.GetByID(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateProfileInput struct {
	FullName      string `json:"full_name" binding:"required"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	ActivityLevel string `json:"activity_level"`
}

// PUT /user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := uc.Users.UpdateProfile(c.GetUint("userID"), input.FullName, input.Age, input.Gender, input.ActivityLevel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
