package controllers

import (
	"net/http"
	"time"

	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type DailyLogController struct {
	Daily       *services.DailyLogService
	Consumption *services.ConsumptionService
	Goals       *services.GoalService
}

func NewDailyLogController(daily *services.DailyLogService, consumption *services.ConsumptionService, goals *services.GoalService) *DailyLogController {
	return &DailyLogController{Daily: daily, Consumption: consumption, Goals: goals}
}

// GET /daily?from=yyyy-mm-dd&to=yyyy-mm-dd
func (dc *DailyLogController) GetRange(c *gin.Context) {
	to, err := dateQuery(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from := to.AddDate(0, 0, -6)
	if raw := c.Query("from"); raw != "" {
		from, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from, want yyyy-mm-dd"})
			return
		}
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from is after to"})
		return
	}

	rows, err := dc.Daily.ReadRange(c.Request.Context(), c.GetUint("userID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /daily/progress?date=yyyy-mm-dd
func (dc *DailyLogController) Progress(c *gin.Context) {
	date, err := dateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	progress, err := dc.Goals.GetGoalsAndProgress(c.GetUint("userID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

type AddWaterInput struct {
	AmountML int    `json:"amount_ml" binding:"required"`
	Date     string `json:"date"`
}

// POST /daily/water
func (dc *DailyLogController) AddWater(c *gin.Context) {
	var input AddWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now()
	if input.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want yyyy-mm-dd"})
			return
		}
	}
	if err := dc.Daily.AddWater(c.GetUint("userID"), date, input.AmountML); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "water added"})
}

// POST /daily/reset?date=yyyy-mm-dd
func (dc *DailyLogController) Reset(c *gin.Context) {
	date, err := dateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dc.Consumption.ResetDay(c.GetUint("userID"), date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "day reset"})
}
