package controllers

import (
	"net/http"

	"github.com/Dayabrar/Eco-Eats/models"
	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// GET /goals
func (gc *GoalController) Get(c *gin.Context) {
	goal, err := gc.Goals.GetGoals(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /goals
func (gc *GoalController) Update(c *gin.Context) {
	var targets models.Nutrients
	if err := c.ShouldBindJSON(&targets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := gc.Goals.UpsertGoals(c.GetUint("userID"), targets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
