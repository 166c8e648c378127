package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/repositories"
	"hospital-api/internal/responses"
)

type BillingHandler struct {
	billingRepo *repositories.BillingRepository
}

func NewBillingHandler(billingRepo *repositories.BillingRepository) *BillingHandler {
	return &BillingHandler{billingRepo: billingRepo}
}

// List handles GET /billing with optional patient_id and status filters.
func (h *BillingHandler) List(c *gin.Context) {
	var filter repositories.BillingFilter
	var err error

	if filter.PatientID, err = intQuery(c, "patient_id"); err != nil {
		responses.Error(c, err)
		return
	}
	filter.Status = stringQuery(c, "status")

	bills, err := h.billingRepo.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}
