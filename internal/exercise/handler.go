package exercise

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/akadam/exercise-tracker/internal/middleware"
	"github.com/akadam/exercise-tracker/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// UserStore defines the interface for user and exercise persistence.
type UserStore interface {
	InsertUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserRef, error)
	AddExercise(ctx context.Context, userID string, ex models.Exercise) (*models.User, error)
	FindLog(ctx context.Context, userID string, f models.LogFilter) (*models.UserLog, error)
}

// Handler holds the exercise-tracker HTTP handlers.
type Handler struct {
	store UserStore
	log   zerolog.Logger
}

func NewHandler(store UserStore, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// CreateUser registers a new user with an empty exercise log.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateUser(r)
	if err != nil {
		writeError(w, badRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.store.InsertUser(r.Context(), req.Username)
	if err != nil {
		h.logError(r, err, "create user")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.UserRef{ID: user.ID, Username: user.Username})
}

// ListUsers returns every user as {_id, username} pairs.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logError(r, err, "list users")
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.UserRef{}
	}
	writeJSON(w, http.StatusOK, users)
}

// AddExercise appends an exercise to a user's log and returns the
// updated user document.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAddExercise(r)
	if err != nil {
		writeError(w, badRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	date, err := exerciseDate(req.Date)
	if err != nil {
		writeError(w, badRequest("invalid date"))
		return
	}

	ex := models.Exercise{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
	}
	user, err := h.store.AddExercise(r.Context(), req.UserID, ex)
	if err != nil {
		h.logError(r, err, "add exercise")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Log returns a user's exercise log, filtered by the optional from, to,
// and limit query parameters.
func (h *Handler) Log(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("userId") {
		writeError(w, badRequest("userId is required"))
		return
	}

	var filter models.LogFilter
	if q.Has("from") {
		from, err := parseDate(q.Get("from"))
		if err != nil {
			writeError(w, badRequest("invalid from date"))
			return
		}
		filter.From = from
	}
	if q.Has("to") {
		to, err := parseDate(q.Get("to"))
		if err != nil {
			writeError(w, badRequest("invalid to date"))
			return
		}
		filter.To = to
	}
	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil || limit <= 0 {
			writeError(w, badRequest("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	lg, err := h.store.FindLog(r.Context(), q.Get("userId"), filter)
	if err != nil {
		h.logError(r, err, "exercise log")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, []models.UserLog{*lg})
}

func (h *Handler) logError(r *http.Request, err error, op string) {
	h.log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("path", r.URL.Path).
		Msg(op)
}
