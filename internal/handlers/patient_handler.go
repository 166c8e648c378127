package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/repositories"
	"hospital-api/internal/responses"
)

type PatientHandler struct {
	patientRepo *repositories.PatientRepository
}

func NewPatientHandler(patientRepo *repositories.PatientRepository) *PatientHandler {
	return &PatientHandler{patientRepo: patientRepo}
}

// List handles GET /patients.
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientRepo.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}
