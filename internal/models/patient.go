package models

// Patient matches the patient table.
// Columns: patient_id, name, date_of_birth (nullable), gender, address, phone
type Patient struct {
	PatientID   int     `json:"patient_id"`
	Name        string  `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
}
