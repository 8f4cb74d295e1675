package exercise

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/akadam/exercise-tracker/internal/store"
)

// validate checks request DTOs against their struct tags. Field names in
// failure messages come from the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HTTPError carries a status code alongside a client-facing message.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func badRequest(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg}
}

// writeError maps a failure onto the plain-text error channel.
// Validation failures become 400s carrying the first failed field's
// message, HTTPErrors keep their own status, store sentinels map to 404
// and 400, and anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	var herr *HTTPError
	switch {
	case errors.As(err, &verrs):
		http.Error(w, validationMessage(verrs), http.StatusBadRequest)
	case errors.As(err, &herr):
		http.Error(w, herr.Message, herr.Status)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, store.ErrInvalidUserID):
		http.Error(w, "invalid userId", http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// validationMessage renders the first failed field, in struct declaration
// order, as a client-facing message.
func validationMessage(verrs validator.ValidationErrors) string {
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " is not valid"
	}
}
