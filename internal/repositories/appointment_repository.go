package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-api/internal/models"
)

// AppointmentFilter holds the optional list filters. Nil fields contribute
// no predicate and no parameter.
type AppointmentFilter struct {
	PatientID *int
	DoctorID  *int
	From      *string
	To        *string
}

const appointmentSelect = `
	SELECT a.appointment_id, a.appointment_date, a.reason,
	       p.patient_id, p.name AS patient_name,
	       d.doctor_id, d.name AS doctor_name
	FROM appointment a
	JOIN patient p ON p.patient_id = a.patient_id
	JOIN doctor d  ON d.doctor_id = a.doctor_id`

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

// List returns appointments joined with patient and doctor names, newest
// first, optionally narrowed by the filter.
func (r *AppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	var builder WhereBuilder
	if filter.PatientID != nil {
		builder.Where("a.patient_id", "=", *filter.PatientID)
	}
	if filter.DoctorID != nil {
		builder.Where("a.doctor_id", "=", *filter.DoctorID)
	}
	if filter.From != nil {
		builder.Where("a.appointment_date", ">=", *filter.From)
	}
	if filter.To != nil {
		builder.Where("a.appointment_date", "<=", *filter.To)
	}

	where, params := builder.Build()
	query := appointmentSelect + where + " ORDER BY a.appointment_date DESC, a.appointment_id DESC"

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}

	return appointments, rows.Err()
}

// FindByID returns one appointment joined with patient and doctor names,
// or nil when the id does not exist.
func (r *AppointmentRepository) FindByID(ctx context.Context, id int) (*models.Appointment, error) {
	query := appointmentSelect + " WHERE a.appointment_id = $1"

	appt, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &appt, nil
}

// Exists reports whether an appointment row with the given id is present.
func (r *AppointmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM appointment WHERE appointment_id = $1)`
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new appointment and returns its generated id.
func (r *AppointmentRepository) Create(ctx context.Context, patientID, doctorID int, appointmentDate string, reason *string) (int, error) {
	query := `
		INSERT INTO appointment (patient_id, doctor_id, appointment_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING appointment_id
	`

	var id int
	err := r.pool.QueryRow(ctx, query, patientID, doctorID, appointmentDate, reason).Scan(&id)
	return id, err
}

// Update writes the supplied fields of one appointment. The caller
// guarantees at least one field is set.
func (r *AppointmentRepository) Update(ctx context.Context, id int, req models.UpdateAppointmentRequest) error {
	var builder SetBuilder
	if req.PatientID != nil {
		builder.Set("patient_id", *req.PatientID)
	}
	if req.DoctorID != nil {
		builder.Set("doctor_id", *req.DoctorID)
	}
	if req.AppointmentDate != nil {
		builder.Set("appointment_date", *req.AppointmentDate)
	}
	if req.Reason != nil {
		builder.Set("reason", *req.Reason)
	}

	clause, params := builder.Build("appointment_id", id)
	_, err := r.pool.Exec(ctx, "UPDATE appointment "+clause, params...)
	return err
}

// Delete removes one appointment row.
func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE appointment_id = $1`, id)
	return err
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&count)
	return count, err
}

func scanAppointment(row pgx.Row) (models.Appointment, error) {
	var appt models.Appointment
	var date time.Time
	err := row.Scan(
		&appt.AppointmentID,
		&date,
		&appt.Reason,
		&appt.PatientID,
		&appt.PatientName,
		&appt.DoctorID,
		&appt.DoctorName,
	)
	if err != nil {
		return models.Appointment{}, err
	}
	appt.AppointmentDate = models.FormatTimestamp(date)
	return appt, nil
}
