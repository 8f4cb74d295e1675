package exercise

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2020-01-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := parseDate("2020-01-15T10:30:00Z"); err != nil {
		t.Errorf("RFC 3339 timestamp rejected: %v", err)
	}
	if _, err := parseDate("last tuesday"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestExerciseDateDefaultsToNow(t *testing.T) {
	got, err := exerciseDate("")
	if err != nil {
		t.Fatalf("exerciseDate: %v", err)
	}
	if d := time.Since(got); d < 0 || d > 5*time.Second {
		t.Errorf("date %v not close to now", got)
	}
}

func TestDecodeCreateUserJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice"}`))
	r.Header.Set("Content-Type", "application/json")

	req, err := decodeCreateUser(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Username != "alice" {
		t.Errorf("username = %q, want %q", req.Username, "alice")
	}
}

func TestDecodeAddExerciseForm(t *testing.T) {
	form := url.Values{
		"userId":      {"abc123"},
		"description": {"run"},
		"duration":    {"30"},
		"date":        {"2020-01-15"},
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := decodeAddExercise(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.UserID != "abc123" || req.Description != "run" || req.Duration != "30" || req.Date != "2020-01-15" {
		t.Errorf("req = %+v", req)
	}
}

func TestDecodeAddExerciseFormWithCharset(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("userId=x&duration=30"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	req, err := decodeAddExercise(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.UserID != "x" || req.Duration != "30" {
		t.Errorf("req = %+v", req)
	}
}
