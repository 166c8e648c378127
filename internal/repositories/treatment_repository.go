package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-api/internal/models"
)

// TreatmentFilter holds the optional list filter.
type TreatmentFilter struct {
	AppointmentID *int
}

type TreatmentRepository struct {
	pool *pgxpool.Pool
}

func NewTreatmentRepository(pool *pgxpool.Pool) *TreatmentRepository {
	return &TreatmentRepository{pool: pool}
}

// List returns treatments newest-id first, optionally narrowed to one
// appointment.
func (r *TreatmentRepository) List(ctx context.Context, filter TreatmentFilter) ([]models.Treatment, error) {
	var builder WhereBuilder
	if filter.AppointmentID != nil {
		builder.Where("t.appointment_id", "=", *filter.AppointmentID)
	}

	where, params := builder.Build()
	query := `SELECT t.treatment_id, t.appointment_id, t.diagnosis, t.prescription, t.notes
		FROM treatment t` + where + " ORDER BY t.treatment_id DESC"

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	treatments := []models.Treatment{}
	for rows.Next() {
		var t models.Treatment
		if err := rows.Scan(&t.TreatmentID, &t.AppointmentID, &t.Diagnosis, &t.Prescription, &t.Notes); err != nil {
			return nil, err
		}
		treatments = append(treatments, t)
	}

	return treatments, rows.Err()
}

func (r *TreatmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM treatment`).Scan(&count)
	return count, err
}
