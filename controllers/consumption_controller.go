package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Consumption *services.ConsumptionService
}

func NewConsumptionController(consumption *services.ConsumptionService) *ConsumptionController {
	return &ConsumptionController{Consumption: consumption}
}

type AddConsumptionInput struct {
	FoodItemID uint   `json:"food_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Unit       string `json:"unit"`
	MealType   string `json:"meal_type"`
	Date       string `json:"date"`
}

// POST /consumptions
func (cc *ConsumptionController) Add(c *gin.Context) {
	var input AddConsumptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date time.Time
	if input.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want yyyy-mm-dd"})
			return
		}
	}

	entry, err := cc.Consumption.AddConsumption(c.GetUint("userID"), input.FoodItemID, input.Quantity, input.Unit, input.MealType, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /consumptions/:id
func (cc *ConsumptionController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}
	if err := cc.Consumption.RemoveConsumption(c.GetUint("userID"), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

// GET /consumptions?date=yyyy-mm-dd
func (cc *ConsumptionController) ListDay(c *gin.Context) {
	date, err := dateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries, err := cc.Consumption.ListDay(c.GetUint("userID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
