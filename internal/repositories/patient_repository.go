package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-api/internal/models"
)

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

// List returns every patient ordered by id.
func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	query := `SELECT patient_id, name, date_of_birth, gender, address, phone
		FROM patient
		ORDER BY patient_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var p models.Patient
		var dob *time.Time
		if err := rows.Scan(&p.PatientID, &p.Name, &dob, &p.Gender, &p.Address, &p.Phone); err != nil {
			return nil, err
		}
		p.DateOfBirth = models.FormatNullableDate(dob)
		patients = append(patients, p)
	}

	return patients, rows.Err()
}

// Exists reports whether a patient row with the given id is present.
func (r *PatientRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM patient WHERE patient_id = $1)`
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&count)
	return count, err
}
