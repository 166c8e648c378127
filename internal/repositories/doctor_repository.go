package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-api/internal/models"
)

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

// List returns every doctor ordered by name.
func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	query := `SELECT doctor_id, name, specialty, phone, email
		FROM doctor
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.DoctorID, &d.Name, &d.Specialty, &d.Phone, &d.Email); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}

	return doctors, rows.Err()
}

// Exists reports whether a doctor row with the given id is present.
func (r *DoctorRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM doctor WHERE doctor_id = $1)`
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&count)
	return count, err
}
