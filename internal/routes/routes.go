package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/handlers"
)

// Handlers groups everything RegisterRoutes wires up.
type Handlers struct {
	Stats        *handlers.StatsHandler
	Auth         *handlers.AuthHandler
	Patients     *handlers.PatientHandler
	Doctors      *handlers.DoctorHandler
	Appointments *handlers.AppointmentHandler
	Treatments   *handlers.TreatmentHandler
	Billing      *handlers.BillingHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/stats", h.Stats.Get)
	router.POST("/login", h.Auth.Login)
	router.GET("/patients", h.Patients.List)
	router.GET("/doctors", h.Doctors.List)
	router.GET("/treatments", h.Treatments.List)
	router.GET("/billing", h.Billing.List)

	appointmentRoutes := NewAppointmentRoutes(h.Appointments)
	appointmentRoutes.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Lists the registered endpoints so developers can inspect the API.
	router.GET("/__routes", func(c *gin.Context) {
		routeList := make([]string, 0, len(router.Routes()))
		for _, route := range router.Routes() {
			routeList = append(routeList, route.Method+" "+route.Path)
		}
		c.JSON(http.StatusOK, routeList)
	})
}
