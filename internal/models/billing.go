package models

// Bill is a billing row joined with the patient name. Amount and
// treatment_id are nullable; null renders as null, never zero.
type Bill struct {
	BillID        int      `json:"bill_id"`
	PatientID     int      `json:"patient_id"`
	PatientName   string   `json:"patient_name"`
	TreatmentID   *int     `json:"treatment_id"`
	Amount        *float64 `json:"amount"`
	PaymentStatus *string  `json:"payment_status"`
	BillingDate   string   `json:"billing_date"`
}
