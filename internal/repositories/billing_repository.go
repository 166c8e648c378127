package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-api/internal/models"
)

// BillingFilter holds the optional list filters. Status matches
// payment_status exactly, case-sensitive.
type BillingFilter struct {
	PatientID *int
	Status    *string
}

type BillingRepository struct {
	pool *pgxpool.Pool
}

func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

// List returns bills joined with the patient name, newest billing date
// first, optionally narrowed by the filter.
func (r *BillingRepository) List(ctx context.Context, filter BillingFilter) ([]models.Bill, error) {
	var builder WhereBuilder
	if filter.PatientID != nil {
		builder.Where("b.patient_id", "=", *filter.PatientID)
	}
	if filter.Status != nil {
		builder.Where("b.payment_status", "=", *filter.Status)
	}

	where, params := builder.Build()
	query := `SELECT b.bill_id, b.patient_id, p.name AS patient_name,
	       b.treatment_id, b.amount, b.payment_status, b.billing_date
	FROM billing b
	JOIN patient p ON p.patient_id = b.patient_id` + where +
		" ORDER BY b.billing_date DESC, b.bill_id DESC"

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		var billingDate time.Time
		err := rows.Scan(
			&b.BillID,
			&b.PatientID,
			&b.PatientName,
			&b.TreatmentID,
			&b.Amount,
			&b.PaymentStatus,
			&billingDate,
		)
		if err != nil {
			return nil, err
		}
		b.BillingDate = models.FormatDate(billingDate)
		bills = append(bills, b)
	}

	return bills, rows.Err()
}

func (r *BillingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM billing`).Scan(&count)
	return count, err
}
