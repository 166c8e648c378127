package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"hospital-api/internal/database"
	"hospital-api/internal/models"
)

// startPostgres brings up a disposable Postgres and returns a migrated
// pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("hospital"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, database.RunMigrations(pool))

	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`INSERT INTO patient (name, date_of_birth, gender, address, phone)
		 VALUES ('Ana Flores', '1990-02-03', 'F', '12 Elm St', '555-0101'),
		        ('Luis Mora', NULL, 'M', '40 Oak Ave', '555-0102')`,
		`INSERT INTO doctor (name, specialty, phone, email)
		 VALUES ('Dr. Zoe Reyes', 'Cardiology', '555-0201', 'zreyes@hospital.test'),
		        ('Dr. Abel Kim', 'Dermatology', '555-0202', 'akim@hospital.test')`,
		`INSERT INTO appointment (patient_id, doctor_id, appointment_date, reason)
		 VALUES (1, 1, '2025-01-10 10:00:00', 'Annual physical'),
		        (2, 2, '2025-02-20 14:30:00', 'Rash')`,
		`INSERT INTO treatment (appointment_id, diagnosis, prescription, notes)
		 VALUES (1, 'Hypertension', 'Lisinopril 10mg', 'Recheck in 3 months'),
		        (2, 'Contact dermatitis', 'Hydrocortisone cream', NULL)`,
		`INSERT INTO billing (patient_id, treatment_id, amount, payment_status, billing_date)
		 VALUES (1, 1, 250.00, 'Paid', '2025-01-11'),
		        (2, 2, 95.50, 'Pending', '2025-02-21'),
		        (1, NULL, NULL, 'Paid', '2025-03-01')`,
	}
	for _, stmt := range statements {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO app_user (username, password_hash, full_name, role) VALUES ($1, $2, $3, $4)`,
		"clerk", string(hash), "Front Desk", "staff")
	require.NoError(t, err)
}

func request(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	gin.SetMode(gin.TestMode)

	pool := startPostgres(t)
	seed(t, pool)
	router := NewRouter(pool, nil)

	t.Run("stats counts all six tables", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/stats", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"patients":2,"doctors":2,"appointments":2,"treatments":2,"billing":3,"users":1}`,
			w.Body.String())
	})

	t.Run("login success excludes hash", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/login", `{"username":"clerk","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "Login successful",
			"user": {"username":"clerk","full_name":"Front Desk","role":"staff"}
		}`, w.Body.String())
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/login", `{"username":"clerk","password":"nope"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid password"}`, w.Body.String())
	})

	t.Run("login unknown user", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/login", `{"username":"ghost","password":"s3cret"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, w.Body.String())
	})

	t.Run("patients ordered by id with null dob", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/patients", "")
		require.Equal(t, http.StatusOK, w.Code)

		var patients []models.Patient
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
		require.Len(t, patients, 2)
		assert.Equal(t, 1, patients[0].PatientID)
		require.NotNil(t, patients[0].DateOfBirth)
		assert.Equal(t, "1990-02-03", *patients[0].DateOfBirth)
		assert.Nil(t, patients[1].DateOfBirth)
	})

	t.Run("doctors ordered by name", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/doctors", "")
		require.Equal(t, http.StatusOK, w.Code)

		var doctors []models.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
		require.Len(t, doctors, 2)
		assert.Equal(t, "Dr. Abel Kim", doctors[0].Name)
		assert.Equal(t, "Dr. Zoe Reyes", doctors[1].Name)
	})

	t.Run("appointments sorted date desc then id desc", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/appointments", "")
		require.Equal(t, http.StatusOK, w.Code)

		var appointments []models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
		require.Len(t, appointments, 2)
		assert.Equal(t, "2025-02-20 14:30:00", appointments[0].AppointmentDate)
		assert.Equal(t, "2025-01-10 10:00:00", appointments[1].AppointmentDate)
		assert.Equal(t, "Ana Flores", appointments[1].PatientName)
		assert.Equal(t, "Dr. Zoe Reyes", appointments[1].DoctorName)
	})

	t.Run("appointment date range filter", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/appointments?from=2025-02-01&to=2025-02-28", "")
		require.Equal(t, http.StatusOK, w.Code)

		var appointments []models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
		require.Len(t, appointments, 1)
		assert.Equal(t, 2, appointments[0].AppointmentID)
	})

	t.Run("create then read back is field-identical", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/appointments",
			`{"patient_id":1,"doctor_id":2,"appointment_date":"2025-11-28 09:30:00","reason":"Check-up"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			Success     bool               `json:"success"`
			Appointment models.Appointment `json:"appointment"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.True(t, created.Success)
		assert.Equal(t, "Check-up", *created.Appointment.Reason)
		assert.Equal(t, "2025-11-28 09:30:00", created.Appointment.AppointmentDate)
		assert.Equal(t, "Ana Flores", created.Appointment.PatientName)
		assert.Equal(t, "Dr. Abel Kim", created.Appointment.DoctorName)

		list := request(t, router, http.MethodGet,
			"/appointments?patient_id=1&doctor_id=2&from=2025-11-28&to=2025-11-29", "")
		require.Equal(t, http.StatusOK, list.Code)

		var readBack []models.Appointment
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &readBack))
		require.Len(t, readBack, 1)
		assert.Equal(t, created.Appointment, readBack[0])
	})

	t.Run("create with unknown patient writes nothing", func(t *testing.T) {
		before := request(t, router, http.MethodGet, "/stats", "")

		w := request(t, router, http.MethodPost, "/appointments",
			`{"patient_id":999,"doctor_id":2,"appointment_date":"2025-11-28 09:30:00"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid patient_id"}`, w.Body.String())

		after := request(t, router, http.MethodGet, "/stats", "")
		assert.JSONEq(t, before.Body.String(), after.Body.String())
	})

	t.Run("update and delete flow", func(t *testing.T) {
		w := request(t, router, http.MethodPut, "/appointments/1", `{"reason":"Annual physical + labs"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var updated struct {
			Appointment models.Appointment `json:"appointment"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Annual physical + labs", *updated.Appointment.Reason)
		assert.Equal(t, "2025-01-10 10:00:00", updated.Appointment.AppointmentDate)

		w = request(t, router, http.MethodDelete, "/appointments/9999", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Appointment not found"}`, w.Body.String())
	})

	t.Run("treatments filtered by appointment", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/treatments?appointment_id=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var treatments []models.Treatment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &treatments))
		require.Len(t, treatments, 1)
		assert.Equal(t, "Hypertension", *treatments[0].Diagnosis)
		assert.Equal(t, "Recheck in 3 months", *treatments[0].Notes)

		all := request(t, router, http.MethodGet, "/treatments", "")
		require.Equal(t, http.StatusOK, all.Code)

		var allTreatments []models.Treatment
		require.NoError(t, json.Unmarshal(all.Body.Bytes(), &allTreatments))
		require.Len(t, allTreatments, 2)
		assert.Equal(t, 2, allTreatments[0].TreatmentID)
		assert.Nil(t, allTreatments[0].Notes)
	})

	t.Run("billing status filter is exact and case-sensitive", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/billing?status=Paid", "")
		require.Equal(t, http.StatusOK, w.Code)

		var bills []models.Bill
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
		require.Len(t, bills, 2)
		for _, b := range bills {
			assert.Equal(t, "Paid", *b.PaymentStatus)
		}
		// billing_date desc, bill_id desc
		assert.Equal(t, "2025-03-01", bills[0].BillingDate)
		assert.Nil(t, bills[0].Amount)
		assert.Nil(t, bills[0].TreatmentID)
		assert.Equal(t, 250.0, *bills[1].Amount)

		lower := request(t, router, http.MethodGet, "/billing?status=paid", "")
		require.Equal(t, http.StatusOK, lower.Code)
		assert.Equal(t, "[]", strings.TrimSpace(lower.Body.String()))
	})
}
