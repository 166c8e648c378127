package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 11, 28, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-28 09:30:00", FormatTimestamp(ts))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(1990, 2, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1990-02-03", FormatDate(d))
}

func TestFormatNullableDate(t *testing.T) {
	assert.Nil(t, FormatNullableDate(nil))

	d := time.Date(1990, 2, 3, 0, 0, 0, 0, time.UTC)
	got := FormatNullableDate(&d)
	require.NotNil(t, got)
	assert.Equal(t, "1990-02-03", *got)
}

func TestPatientNullDateOfBirthRendersAsNull(t *testing.T) {
	p := Patient{PatientID: 1, Name: "Ana"}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"date_of_birth":null`)
}

func TestBillNullColumnsRenderAsNull(t *testing.T) {
	b := Bill{
		BillID:      5,
		PatientID:   1,
		PatientName: "Ana",
		BillingDate: "2025-01-01",
	}

	out, err := json.Marshal(b)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"treatment_id":null`)
	assert.Contains(t, string(out), `"amount":null`)
}

func TestBillAmountRendersAsNumber(t *testing.T) {
	amount := 149.5
	b := Bill{BillID: 5, PatientID: 1, PatientName: "Ana", Amount: &amount, BillingDate: "2025-01-01"}

	out, err := json.Marshal(b)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"amount":149.5`)
}

func TestAppUserHashNeverSerialized(t *testing.T) {
	u := AppUser{Username: "clerk", PasswordHash: "$2a$10$secret", FullName: "Front Desk", Role: "staff"}

	out, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "secret")
	assert.NotContains(t, string(out), "password")
}

func TestUpdateAppointmentRequestIsEmpty(t *testing.T) {
	var req UpdateAppointmentRequest
	assert.True(t, req.IsEmpty())

	reason := "Follow-up"
	req.Reason = &reason
	assert.False(t, req.IsEmpty())
}
