package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type CoupleHandler struct {
	Service *service.CoupleService
}

func NewCoupleHandler(s *service.CoupleService) *CoupleHandler {
	return &CoupleHandler{Service: s}
}

func (h *CoupleHandler) SubmitCouple(c *gin.Context) {
	var submission models.CoupleSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.Process(context.Background(), &submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *CoupleHandler) GetCoupleResult(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.GetResult(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Couple result not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CoupleHandler) GetCoupleResultsByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	results, err := h.Service.GetResultsByEmail(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
