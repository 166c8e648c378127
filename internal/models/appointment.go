package models

// Appointment is an appointment row joined with the patient and doctor
// names. List and write endpoints both return this shape.
type Appointment struct {
	AppointmentID   int     `json:"appointment_id"`
	AppointmentDate string  `json:"appointment_date"`
	Reason          *string `json:"reason"`
	PatientID       int     `json:"patient_id"`
	PatientName     string  `json:"patient_name"`
	DoctorID        int     `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
}

// CreateAppointmentRequest is the POST /appointments body.
type CreateAppointmentRequest struct {
	PatientID       *int    `json:"patient_id"`
	DoctorID        *int    `json:"doctor_id"`
	AppointmentDate *string `json:"appointment_date"`
	Reason          *string `json:"reason"`
}

// UpdateAppointmentRequest is the PUT /appointments/:id body. Every field
// is optional; only supplied fields are written.
type UpdateAppointmentRequest struct {
	PatientID       *int    `json:"patient_id"`
	DoctorID        *int    `json:"doctor_id"`
	AppointmentDate *string `json:"appointment_date"`
	Reason          *string `json:"reason"`
}

// IsEmpty reports whether the update supplies no fields at all.
func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.PatientID == nil && r.DoctorID == nil && r.AppointmentDate == nil && r.Reason == nil
}
