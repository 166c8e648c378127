package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/repositories"
	"hospital-api/internal/responses"
)

type DoctorHandler struct {
	doctorRepo *repositories.DoctorRepository
}

func NewDoctorHandler(doctorRepo *repositories.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{doctorRepo: doctorRepo}
}

// List handles GET /doctors.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorRepo.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}
