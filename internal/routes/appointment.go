package routes

import (
	"github.com/gin-gonic/gin"

	"hospital-api/internal/handlers"
)

type AppointmentRoutes struct {
	appointmentHandler *handlers.AppointmentHandler
}

func NewAppointmentRoutes(appointmentHandler *handlers.AppointmentHandler) *AppointmentRoutes {
	return &AppointmentRoutes{appointmentHandler: appointmentHandler}
}

func (r *AppointmentRoutes) RegisterRoutes(router *gin.Engine) {
	appointments := router.Group("/appointments")
	{
		appointments.GET("", r.appointmentHandler.List)
		appointments.POST("", r.appointmentHandler.Create)
		appointments.PUT("/:appointment_id", r.appointmentHandler.Update)
		appointments.DELETE("/:appointment_id", r.appointmentHandler.Delete)
	}
}
