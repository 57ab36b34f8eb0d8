package controllers

import (
	"net/http"
	"strconv"

	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Analyzer *services.AnalyzerService
}

func NewReportController(analyzer *services.AnalyzerService) *ReportController {
	return &ReportController{Analyzer: analyzer}
}

// GET /reports/analysis?days=7
func (rc *ReportController) Analysis(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = n
	}

	report, err := rc.Analyzer.AnalyzeWindow(c.Request.Context(), c.GetUint("userID"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
