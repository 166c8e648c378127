package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/apperrors"
	"hospital-api/internal/models"
	"hospital-api/internal/repositories"
	"hospital-api/internal/responses"
	"hospital-api/internal/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles GET /appointments with optional patient_id, doctor_id,
// from, and to filters.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter repositories.AppointmentFilter
	var err error

	if filter.PatientID, err = intQuery(c, "patient_id"); err != nil {
		responses.Error(c, err)
		return
	}
	if filter.DoctorID, err = intQuery(c, "doctor_id"); err != nil {
		responses.Error(c, err)
		return
	}
	filter.From = stringQuery(c, "from")
	filter.To = stringQuery(c, "to")

	appointments, err := h.appointmentService.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Create handles POST /appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, apperrors.Validation("Invalid request body"))
		return
	}

	appointment, err := h.appointmentService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": appointment,
	})
}

// Update handles PUT /appointments/:appointment_id with a partial body.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := intParam(c, "appointment_id")
	if err != nil {
		responses.Error(c, err)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, apperrors.Validation("Invalid request body"))
		return
	}

	appointment, err := h.appointmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"appointment": appointment,
	})
}

// Delete handles DELETE /appointments/:appointment_id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := intParam(c, "appointment_id")
	if err != nil {
		responses.Error(c, err)
		return
	}

	if err := h.appointmentService.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment deleted",
	})
}
