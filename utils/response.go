package utils

import (
	"encoding/json"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type M map[string]interface{}

// WriteError maps a categorized error to its HTTP status and writes it.
// Uncategorized errors are reported as 500 without their message.
func WriteError(w http.ResponseWriter, err error) {
	var e *goerrors.Error
	if !goerrors.As(err, &e) {
		RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := StatusFor(e.Category)
	body := M{"error": e.Message, "category": e.Category}
	if e.TextCode != "" {
		body["code"] = e.TextCode
	}
	if len(e.ValidationErrors) > 0 {
		body["fields"] = e.ValidationMap()
	}
	if status == http.StatusInternalServerError {
		body["error"] = "internal error"
	}
	RespondWithJSON(w, status, body)
}

func StatusFor(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid JSON body").WithTextCode("BAD_JSON")
	}
	return nil
}

// Validate runs v.Validate and converts ozzo field errors into a validation error.
func Validate(v interface{ Validate() error }, message string) error {
	if err := goerrors.ValidateWithOzzo(v.Validate, message); err != nil {
		return err
	}
	return nil
}

func NotFound(kind string) error {
	return goerrors.New(kind+" not found", goerrors.CategoryNotFound).WithTextCode("NOT_FOUND")
}
