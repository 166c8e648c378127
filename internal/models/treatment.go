package models

// Treatment matches the treatment table.
type Treatment struct {
	TreatmentID   int     `json:"treatment_id"`
	AppointmentID int     `json:"appointment_id"`
	Diagnosis     *string `json:"diagnosis"`
	Prescription  *string `json:"prescription"`
	Notes         *string `json:"notes"`
}
