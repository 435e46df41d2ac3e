package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"waterme/models"
	"waterme/store"
)

type PlantHandler struct {
	Plants *store.PlantStore
}

func NewPlantHandler(plants *store.PlantStore) *PlantHandler {
	return &PlantHandler{Plants: plants}
}

func (h *PlantHandler) Create(c *gin.Context) {
	var req struct {
		UserID       int     `json:"user_id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		PhotoURL     string  `json:"photo_url"`
		LastWatering string  `json:"last_watering"`
		NextWatering string  `json:"next_watering"`
		LightLevel   float64 `json:"light_level"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	plant := models.Plant{
		UserID:       req.UserID,
		Name:         req.Name,
		Description:  req.Description,
		PhotoURL:     req.PhotoURL,
		LastWatering: req.LastWatering,
		NextWatering: req.NextWatering,
		LightLevel:   req.LightLevel,
	}

	id, err := h.Plants.Create(&plant)
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Saved"})
}

func (h *PlantHandler) List(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return
	}

	plants, err := h.Plants.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, plants)
}

func (h *PlantHandler) Update(c *gin.Context) {
	plantID, err := strconv.Atoi(c.Param("plant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plant_id must be an integer"})
		return
	}

	var req struct {
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		PhotoURL     string  `json:"photo_url"`
		LastWatering string  `json:"last_watering"`
		NextWatering string  `json:"next_watering"`
		LightLevel   float64 `json:"light_level"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	plant := models.Plant{
		Name:         req.Name,
		Description:  req.Description,
		PhotoURL:     req.PhotoURL,
		LastWatering: req.LastWatering,
		NextWatering: req.NextWatering,
		LightLevel:   req.LightLevel,
	}

	err = h.Plants.Update(plantID, &plant)
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plant updated"})
}

func (h *PlantHandler) Delete(c *gin.Context) {
	plantID, err := strconv.Atoi(c.Param("plant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plant_id must be an integer"})
		return
	}

	// Unconditional delete: a missing id is still a success.
	if err := h.Plants.Delete(plantID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
