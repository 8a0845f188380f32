package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/test/helpers"
)

func TestSpeakers_PublicOrderAndAdminCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	// Creation goes through the back office.
	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/speakers", token, map[string]string{
		"name":  "Zarina Omar",
		"title": "CEO",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, "POST", "/api/v1/admin/speakers", token, map[string]string{
		"name":  "Arman Dos",
		"title": "CTO",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Public listing is ordered by name.
	res, body = ts.SendRequest(t, "GET", "/api/v1/speakers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Speakers []models.Speaker `json:"speakers"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Speakers, 2)
	assert.Equal(t, "Arman Dos", listing.Speakers[0].Name)
	assert.Equal(t, "Zarina Omar", listing.Speakers[1].Name)

	// Update and delete round out the admin surface.
	id := listing.Speakers[0].ID
	res, body = ts.SendRequest(t, "PUT", "/api/v1/admin/speakers/"+id, token, map[string]string{
		"name":  "Arman Dos",
		"title": "VP Engineering",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "VP Engineering")

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/speakers/"+id, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Anonymous writes are refused.
	res, _ = ts.SendRequest(t, "POST", "/api/v1/admin/speakers", "", map[string]string{
		"name":  "Intruder",
		"title": "None",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProgram_GroupedByDay(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	day1 := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC)

	for _, s := range []map[string]interface{}{
		{"title": "Opening Keynote", "session_type": "keynote", "start_time": day1, "end_time": day1.Add(time.Hour)},
		{"title": "Scaling Workshop", "session_type": "workshop", "start_time": day1.Add(2 * time.Hour), "end_time": day1.Add(3 * time.Hour)},
		{"title": "Closing Panel", "session_type": "panel", "start_time": day2, "end_time": day2.Add(time.Hour)},
	} {
		res, body := ts.SendRequest(t, "POST", "/api/v1/admin/program", token, s)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, "GET", "/api/v1/program", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var agenda struct {
		Days []struct {
			Date     string                  `json:"date"`
			Sessions []models.ProgramSession `json:"sessions"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &agenda))
	require.Len(t, agenda.Days, 2)
	assert.Equal(t, "2026-10-12", agenda.Days[0].Date)
	require.Len(t, agenda.Days[0].Sessions, 2)
	assert.Equal(t, "Opening Keynote", agenda.Days[0].Sessions[0].Title)
	assert.Equal(t, "2026-10-13", agenda.Days[1].Date)
	require.Len(t, agenda.Days[1].Sessions, 1)
}

func TestProgram_RejectsInvertedTimes(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	start := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/program", token, map[string]interface{}{
		"title":        "Backwards Session",
		"session_type": "panel",
		"start_time":   start,
		"end_time":     start.Add(-time.Hour),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "end_time must be after start_time")
}

func TestBlog_PublishLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/blog", token, map[string]interface{}{
		"title":   "Hello World Event",
		"content": "Long form content here.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal([]byte(body), &post))
	assert.Equal(t, "hello-world-event", post.Slug)
	assert.False(t, post.Published)

	// Drafts are invisible to visitors.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/blog/hello-world-event", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, "GET", "/api/v1/blog", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total":0`)

	// Publish flips visibility on.
	res, body = ts.SendRequest(t, "PATCH", "/api/v1/admin/blog/"+post.ID+"/publish", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"published":true`)

	res, body = ts.SendRequest(t, "GET", "/api/v1/blog/hello-world-event", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Hello World Event")

	// Retitling re-derives the slug.
	res, body = ts.SendRequest(t, "PUT", "/api/v1/admin/blog/"+post.ID, token, map[string]interface{}{
		"title":     "Fresh   Title",
		"content":   "Long form content here.",
		"published": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"slug":"fresh-title"`)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/blog/"+post.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestBlog_ImageUpload(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	res, body := ts.SendMultipart(t, "POST", "/api/v1/admin/blog/images", token,
		"image", "cover photo.png", "image/png", png)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var upload struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &upload))
	assert.Contains(t, upload.URL, "blog-images/")
	assert.Contains(t, upload.URL, "cover_photo.png")

	// The stored file is served back through the files route.
	res, _ = ts.SendRequest(t, "GET", upload.URL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Disallowed MIME types are rejected.
	res, _ = ts.SendMultipart(t, "POST", "/api/v1/admin/blog/images", token,
		"image", "notes.txt", "text/plain", []byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestContact_SubmitAndTriage(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, "POST", "/api/v1/contact-messages", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Sponsorship",
		"message": "How do we become a sponsor?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var msg models.ContactMessage
	require.NoError(t, ts.DB.Where("email = ?", "visitor@example.com").First(&msg).Error)
	assert.Equal(t, models.ContactStatusNew, msg.Status)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/admin/contact-messages/"+msg.ID+"/status", token, map[string]string{
		"status": "read",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&msg, "id = ?", msg.ID).Error)
	assert.Equal(t, models.ContactStatusRead, msg.Status)

	res, body = ts.SendRequest(t, "GET", "/api/v1/admin/contact-messages?status=read", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "visitor@example.com")
}

func TestShowcase_PublicLists(t *testing.T) {
	ts := helpers.NewTestServer(t)

	require.NoError(t, ts.DB.Create(&models.Testimonial{
		AuthorName: "Past Attendee", AuthorTitle: "Founder", Quote: "Best summit of the year.",
	}).Error)
	require.NoError(t, ts.DB.Create(&models.GalleryImage{
		ImageURL: "https://cdn.example.com/photo-1.jpg", Caption: "Main stage",
	}).Error)

	res, body := ts.SendRequest(t, "GET", "/api/v1/testimonials", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Best summit of the year.")

	res, body = ts.SendRequest(t, "GET", "/api/v1/gallery", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "photo-1.jpg")
}

func TestDashboard_Metrics(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := helpers.SeedAndLoginAdmin(t, ts)

	seedRegistration(t, ts, "metric@example.com")
	require.NoError(t, ts.DB.Create(&models.MentorshipApplication{
		FullName: "M", Email: "m@example.com", Company: "C",
		ExperienceLevel: "senior", MentorshipFocus: "ops", Bio: "b",
		Status: models.ApplicationStatusPending,
	}).Error)
	require.NoError(t, ts.DB.Create(&models.AwardNomination{
		NomineeName: "N", NomineeEmail: "n@example.com",
		NominatorName: "O", NominatorEmail: "o@example.com",
		Category: "Founder", Reason: "r",
		Status: models.ApplicationStatusPending,
	}).Error)
	require.NoError(t, ts.DB.Create(&models.Speaker{Name: "S", Title: "CEO"}).Error)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var metrics struct {
		TotalRegistrations          int64 `json:"total_registrations"`
		TotalMentorshipApplications int64 `json:"total_mentorship_applications"`
		TotalSpeakers               int64 `json:"total_speakers"`
		TotalAwardNominations       int64 `json:"total_award_nominations"`
		PendingApplications         int64 `json:"pending_applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &metrics))
	assert.Equal(t, int64(1), metrics.TotalRegistrations)
	assert.Equal(t, int64(1), metrics.TotalMentorshipApplications)
	assert.Equal(t, int64(1), metrics.TotalSpeakers)
	assert.Equal(t, int64(1), metrics.TotalAwardNominations)
	assert.Equal(t, int64(2), metrics.PendingApplications)
}
