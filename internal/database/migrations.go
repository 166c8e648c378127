package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the schema idempotently. Production deployments
// own the schema out-of-band; this exists for local boot and tests.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createPatientTable,
		createDoctorTable,
		createAppointmentTable,
		createTreatmentTable,
		createBillingTable,
		createAppUserTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createPatientTable = `
CREATE TABLE IF NOT EXISTS patient (
  patient_id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  date_of_birth DATE,
  gender TEXT,
  address TEXT,
  phone TEXT
);
`

const createDoctorTable = `
CREATE TABLE IF NOT EXISTS doctor (
  doctor_id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  specialty TEXT,
  phone TEXT,
  email TEXT
);

CREATE INDEX IF NOT EXISTS idx_doctor_name ON doctor(name);
`

const createAppointmentTable = `
CREATE TABLE IF NOT EXISTS appointment (
  appointment_id SERIAL PRIMARY KEY,
  patient_id INT NOT NULL REFERENCES patient(patient_id),
  doctor_id INT NOT NULL REFERENCES doctor(doctor_id),
  appointment_date TIMESTAMP NOT NULL,
  reason TEXT
);

CREATE INDEX IF NOT EXISTS idx_appointment_patient_id ON appointment(patient_id);
CREATE INDEX IF NOT EXISTS idx_appointment_doctor_id ON appointment(doctor_id);
CREATE INDEX IF NOT EXISTS idx_appointment_date ON appointment(appointment_date);
`

const createTreatmentTable = `
CREATE TABLE IF NOT EXISTS treatment (
  treatment_id SERIAL PRIMARY KEY,
  appointment_id INT NOT NULL REFERENCES appointment(appointment_id),
  diagnosis TEXT,
  prescription TEXT,
  notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_treatment_appointment_id ON treatment(appointment_id);
`

const createBillingTable = `
CREATE TABLE IF NOT EXISTS billing (
  bill_id SERIAL PRIMARY KEY,
  patient_id INT NOT NULL REFERENCES patient(patient_id),
  treatment_id INT REFERENCES treatment(treatment_id),
  amount NUMERIC(10,2),
  payment_status TEXT,
  billing_date DATE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_billing_patient_id ON billing(patient_id);
CREATE INDEX IF NOT EXISTS idx_billing_payment_status ON billing(payment_status);
`

const createAppUserTable = `
CREATE TABLE IF NOT EXISTS app_user (
  username TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL,
  full_name TEXT,
  role TEXT
);
`
