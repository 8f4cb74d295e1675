package exercise

import (
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"github.com/akadam/exercise-tracker/internal/models"
)

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// exerciseDate resolves a submitted date string, defaulting to the
// current time when the caller omits it.
func exerciseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(s)
}

// isFormEncoded reports whether the request body is urlencoded form data.
// Bodies arrive either form-encoded or as JSON.
func isFormEncoded(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

func decodeCreateUser(r *http.Request) (models.CreateUserRequest, error) {
	var req models.CreateUserRequest
	if isFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Username = r.PostFormValue("username")
		return req, nil
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

func decodeAddExercise(r *http.Request) (models.AddExerciseRequest, error) {
	var req models.AddExerciseRequest
	if isFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.UserID = r.PostFormValue("userId")
		req.Description = r.PostFormValue("description")
		req.Duration = r.PostFormValue("duration")
		req.Date = r.PostFormValue("date")
		return req, nil
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}
