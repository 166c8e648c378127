package services

import (
	"context"
	"fmt"

	"hospital-api/internal/models"
)

// Counter is anything that can report its table's row count.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type StatsService struct {
	patients     Counter
	doctors      Counter
	appointments Counter
	treatments   Counter
	billing      Counter
	users        Counter
}

func NewStatsService(patients, doctors, appointments, treatments, billing, users Counter) *StatsService {
	return &StatsService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		treatments:   treatments,
		billing:      billing,
		users:        users,
	}
}

// Collect counts all six tables. Counts run sequentially; the first store
// error aborts the whole request.
func (s *StatsService) Collect(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	counts := []struct {
		name    string
		counter Counter
		dest    *int64
	}{
		{"patients", s.patients, &stats.Patients},
		{"doctors", s.doctors, &stats.Doctors},
		{"appointments", s.appointments, &stats.Appointments},
		{"treatments", s.treatments, &stats.Treatments},
		{"billing", s.billing, &stats.Billing},
		{"users", s.users, &stats.Users},
	}

	for _, c := range counts {
		count, err := c.counter.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dest = count
	}

	return &stats, nil
}
