package services

import (
	"context"

	"hospital-api/internal/apperrors"
	"hospital-api/internal/models"
	"hospital-api/internal/repositories"
)

// AppointmentStore is the slice of the appointment repository the service
// needs.
type AppointmentStore interface {
	List(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error)
	FindByID(ctx context.Context, id int) (*models.Appointment, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, patientID, doctorID int, appointmentDate string, reason *string) (int, error)
	Update(ctx context.Context, id int, req models.UpdateAppointmentRequest) error
	Delete(ctx context.Context, id int) error
}

// ReferenceStore answers the foreign-key existence checks.
type ReferenceStore interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type AppointmentService struct {
	appointments AppointmentStore
	patients     ReferenceStore
	doctors      ReferenceStore
}

func NewAppointmentService(appointments AppointmentStore, patients, doctors ReferenceStore) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
	}
}

func (s *AppointmentService) List(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error) {
	return s.appointments.List(ctx, filter)
}

// Create validates the referenced patient and doctor, inserts the row, and
// returns the re-fetched record joined with their names. The caller gets
// the stored truth back, never an echo of its own input.
func (s *AppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.PatientID == nil {
		return nil, apperrors.Validation("patient_id is required")
	}
	if req.DoctorID == nil {
		return nil, apperrors.Validation("doctor_id is required")
	}
	if req.AppointmentDate == nil || *req.AppointmentDate == "" {
		return nil, apperrors.Validation("appointment_date is required")
	}

	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctor(ctx, *req.DoctorID); err != nil {
		return nil, err
	}

	id, err := s.appointments.Create(ctx, *req.PatientID, *req.DoctorID, *req.AppointmentDate, req.Reason)
	if err != nil {
		return nil, err
	}

	return s.refetch(ctx, id)
}

// Update writes the supplied subset of fields after re-validating every
// reference it changes, then re-fetches the record.
func (s *AppointmentService) Update(ctx context.Context, id int, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	if req.IsEmpty() {
		return nil, apperrors.Validation("Nothing to update")
	}

	if req.PatientID != nil {
		if err := s.checkPatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
	}
	if req.DoctorID != nil {
		if err := s.checkDoctor(ctx, *req.DoctorID); err != nil {
			return nil, err
		}
	}

	exists, err := s.appointments.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Appointment not found")
	}

	if err := s.appointments.Update(ctx, id, req); err != nil {
		return nil, err
	}

	return s.refetch(ctx, id)
}

// Delete removes one appointment, failing with NotFound when the id does
// not exist.
func (s *AppointmentService) Delete(ctx context.Context, id int) error {
	exists, err := s.appointments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Appointment not found")
	}

	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) checkPatient(ctx context.Context, id int) error {
	exists, err := s.patients.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.InvalidReference("Invalid patient_id")
	}
	return nil
}

func (s *AppointmentService) checkDoctor(ctx context.Context, id int) error {
	exists, err := s.doctors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.InvalidReference("Invalid doctor_id")
	}
	return nil
}

func (s *AppointmentService) refetch(ctx context.Context, id int) (*models.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		// The row was written moments ago; losing it means a concurrent
		// delete or a store fault.
		return nil, apperrors.NotFound("Appointment not found")
	}
	return appt, nil
}
