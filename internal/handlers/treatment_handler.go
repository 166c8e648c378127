package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/repositories"
	"hospital-api/internal/responses"
)

type TreatmentHandler struct {
	treatmentRepo *repositories.TreatmentRepository
}

func NewTreatmentHandler(treatmentRepo *repositories.TreatmentRepository) *TreatmentHandler {
	return &TreatmentHandler{treatmentRepo: treatmentRepo}
}

// List handles GET /treatments with an optional appointment_id filter.
func (h *TreatmentHandler) List(c *gin.Context) {
	var filter repositories.TreatmentFilter
	var err error

	if filter.AppointmentID, err = intQuery(c, "appointment_id"); err != nil {
		responses.Error(c, err)
		return
	}

	treatments, err := h.treatmentRepo.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, treatments)
}
