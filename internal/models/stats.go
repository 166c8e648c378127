package models

// Stats carries the row counts of the six tables.
type Stats struct {
	Patients     int64 `json:"patients"`
	Doctors      int64 `json:"doctors"`
	Appointments int64 `json:"appointments"`
	Treatments   int64 `json:"treatments"`
	Billing      int64 `json:"billing"`
	Users        int64 `json:"users"`
}
