package controllers

import (
	"net/http"
	"strconv"

	"github.com/Dayabrar/Eco-Eats/models"
	"github.com/Dayabrar/Eco-Eats/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{Catalog: catalog}
}

// GET /foods?q=apple
func (fc *FoodController) Search(c *gin.Context) {
	foods, err := fc.Catalog.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/:id — numeric id, or an exact name as a fallback
func (fc *FoodController) Get(c *gin.Context) {
	param := c.Param("id")
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		food, err := fc.Catalog.GetByName(param)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, food)
		return
	}
	food, err := fc.Catalog.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /foods (admin)
func (fc *FoodController) Create(c *gin.Context) {
	var food models.FoodItem
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := fc.Catalog.Create(&food, c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// PUT /foods/:id (admin)
func (fc *FoodController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	var food models.FoodItem
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food.ID = uint(id)
	if err := fc.Catalog.Update(&food, c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id (admin)
func (fc *FoodController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	if err := fc.Catalog.Delete(uint(id), c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
