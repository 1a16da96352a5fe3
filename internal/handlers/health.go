package handlers

import (
	"net/http"

	"github.com/emreglvibecoder/darth-vader-api/internal/dto"
	"github.com/gin-gonic/gin"
)

const rootMessage = "API Çalışıyor! Test için /docs adresine git."

// Root reports that the API is up
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: rootMessage})
}

// Health is the liveness probe
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Darth Vader API ayakta",
	})
}
