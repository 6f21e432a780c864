package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// POST /api/foods
func (fc *FoodController) Create(c *gin.Context) {
	var in services.CreateFoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid food payload", err)
		return
	}

	food, err := fc.foods.Create(currentUserID(c), in)
	if err != nil {
		fail(c, err, "failed to create food")
		return
	}
	utils.SendSuccess(c, http.StatusCreated, "food created", food)
}

// GET /api/foods?search=&source=
func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.foods.List(c.Query("search"), c.Query("source"))
	if err != nil {
		fail(c, err, "failed to list foods")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "foods listed", foods)
}

// GET /api/foods/:id
func (fc *FoodController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	food, err := fc.foods.Get(id)
	if err != nil {
		fail(c, err, "food not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "food fetched", food)
}

// PUT /api/foods/:id
func (fc *FoodController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateFoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid food payload", err)
		return
	}

	food, err := fc.foods.Update(id, in)
	if err != nil {
		fail(c, err, "failed to update food")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "food updated", food)
}

// DELETE /api/foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := fc.foods.Delete(id); err != nil {
		fail(c, err, "failed to delete food")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "food deleted", nil)
}

// GET /api/foods/search/name?name=&source=
func (fc *FoodController) SearchByName(c *gin.Context) {
	results, err := fc.foods.SearchByName(c.Query("name"), c.Query("source"))
	if err != nil {
		fail(c, err, "search failed")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "search results", results)
}

// GET /api/foods/search/barcode/:barcode
func (fc *FoodController) SearchByBarcode(c *gin.Context) {
	food, err := fc.foods.LookupBarcode(c.Param("barcode"))
	if err != nil {
		fail(c, err, "no food found for barcode")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "food found", food)
}
