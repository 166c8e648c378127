package models

// Doctor matches the doctor table.
type Doctor struct {
	DoctorID  int     `json:"doctor_id"`
	Name      string  `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}
