package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/test/helpers"
)

func TestRegistration_Submit(t *testing.T) {
	ts := helpers.NewTestServer(t)

	age := 34
	res, body := ts.SendRequest(t, "POST", "/api/v1/registrations", "", map[string]interface{}{
		"full_name":        "Amina Bekova",
		"email":            "amina@example.com",
		"phone":            "+7 701 000 0000",
		"company":          "Bekova Consulting",
		"job_title":        "Managing Partner",
		"age":              age,
		"gender":           "female",
		"participant_type": "delegate",
		"workshops":        []string{"Leadership Lab", "Scaling Up"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, "Registration successful")

	var reg models.Registration
	require.NoError(t, ts.DB.Where("email = ?", "amina@example.com").First(&reg).Error)
	assert.Equal(t, "Leadership Lab, Scaling Up", reg.Workshops)
	assert.Equal(t, "free", reg.TicketType)
	assert.Equal(t, "completed", reg.Status)
	require.NotNil(t, reg.Age)
	assert.Equal(t, 34, *reg.Age)
}

func TestRegistration_SubmitValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// Broken email never reaches the table.
	res, body := ts.SendRequest(t, "POST", "/api/v1/registrations", "", map[string]interface{}{
		"full_name":        "No Email",
		"email":            "not-an-email",
		"phone":            "123",
		"job_title":        "CEO",
		"participant_type": "delegate",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "email")

	var count int64
	ts.DB.Model(&models.Registration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegistration_AdminGate(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// Back office is sealed without a token.
	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/registrations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/admin/registrations/export", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRegistration_AdminListAndUpdate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	seedRegistration(t, ts, "one@example.com")
	seedRegistration(t, ts, "two@example.com")

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/registrations", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "one@example.com")
	assert.Contains(t, body, "two@example.com")
	assert.Contains(t, body, `"total":2`)

	var reg models.Registration
	require.NoError(t, ts.DB.Where("email = ?", "one@example.com").First(&reg).Error)

	res, body = ts.SendRequest(t, "PUT", "/api/v1/admin/registrations/"+reg.ID, token, map[string]interface{}{
		"company": "Updated Holdings",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Updated Holdings")

	// Unknown ID reports not found instead of silently succeeding.
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/admin/registrations/no-such-id", token, map[string]interface{}{
		"company": "Ghost Inc",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRegistration_AdminDelete(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	seedRegistration(t, ts, "gone@example.com")

	var reg models.Registration
	require.NoError(t, ts.DB.Where("email = ?", "gone@example.com").First(&reg).Error)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/admin/registrations/"+reg.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/registrations/"+reg.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRegistration_ExportCSV(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	seedRegistration(t, ts, "csv-one@example.com")
	seedRegistration(t, ts, "csv-two@example.com")

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/registrations/export", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "text/csv", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "registrations.csv")

	lines := strings.Split(body, "\n")
	// Header plus one line per registration.
	require.Len(t, lines, 3)
	assert.Equal(t, `"Name","Email","Phone","Age","Gender","Company","Job Title","Participant Type","Workshops","Status","Date"`, lines[0])
	assert.Contains(t, lines[1], `"csv-one@example.com"`)
	// Optional fields left empty export as a dash.
	assert.Contains(t, lines[1], `"-"`)
}

func seedRegistration(t *testing.T, ts *helpers.TestServer, email string) {
	t.Helper()
	res, body := ts.SendRequest(t, "POST", "/api/v1/registrations", "", map[string]interface{}{
		"full_name":        "Seed User",
		"email":            email,
		"phone":            "+7 700 123 4567",
		"job_title":        "Director",
		"participant_type": "delegate",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
}
