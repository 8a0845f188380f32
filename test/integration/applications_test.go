package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/test/helpers"
)

func TestMentorship_SubmitAndReview(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, "POST", "/api/v1/mentorship-applications", "", map[string]interface{}{
		"full_name":        "Dana Serik",
		"email":            "dana@example.com",
		"company":          "Serik Group",
		"experience_level": "senior",
		"mentorship_focus": "fundraising",
		"bio":              "Fifteen years building consumer brands.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var app models.MentorshipApplication
	require.NoError(t, ts.DB.Where("email = ?", "dana@example.com").First(&app).Error)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	// Approve it.
	res, body = ts.SendRequest(t, "PATCH", "/api/v1/admin/mentorship-applications/"+app.ID+"/status", token, map[string]string{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"approved"`)

	// Re-applying the current status is reported as a conflict.
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/mentorship-applications/"+app.ID+"/status", token, map[string]string{
		"status": "approved",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// A status outside the workflow never reaches the service.
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/mentorship-applications/"+app.ID+"/status", token, map[string]string{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMentorship_ListFilterByStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	pending := models.MentorshipApplication{
		FullName: "P", Email: "p@example.com", Company: "C",
		ExperienceLevel: "junior", MentorshipFocus: "ops", Bio: "b",
		Status: models.ApplicationStatusPending,
	}
	rejected := models.MentorshipApplication{
		FullName: "R", Email: "r@example.com", Company: "C",
		ExperienceLevel: "senior", MentorshipFocus: "ops", Bio: "b",
		Status: models.ApplicationStatusRejected,
	}
	require.NoError(t, ts.DB.Create(&pending).Error)
	require.NoError(t, ts.DB.Create(&rejected).Error)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/mentorship-applications?status=pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "p@example.com")
	assert.NotContains(t, body, "r@example.com")
	assert.Contains(t, body, `"total":1`)
}

func TestAwardNomination_SubmitAndReview(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, "POST", "/api/v1/award-nominations", "", map[string]interface{}{
		"nominee_name":    "Aliya Kairat",
		"nominee_email":   "aliya@example.com",
		"nominator_name":  "Bolat Kairat",
		"nominator_email": "bolat@example.com",
		"category":        "Founder of the Year",
		"reason":          "Grew the company tenfold while mentoring a dozen founders.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var nom models.AwardNomination
	require.NoError(t, ts.DB.Where("nominee_email = ?", "aliya@example.com").First(&nom).Error)
	assert.Equal(t, models.ApplicationStatusPending, nom.Status)

	res, body = ts.SendRequest(t, "PATCH", "/api/v1/admin/award-nominations/"+nom.ID+"/status", token, map[string]string{
		"status": "rejected",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"rejected"`)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/award-nominations/"+nom.ID+"/status", token, map[string]string{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestAwardNomination_DeleteUnknown(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/admin/award-nominations/missing-id", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
