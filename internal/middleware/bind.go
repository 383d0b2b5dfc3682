package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"emergencyAPI/internal/render"
	"emergencyAPI/pkg/validator"
)

const maxBodyBytes = 1 << 20

// BindJSON decodes one JSON object from the body into target and runs the
// struct validators. On failure it writes the 400 envelope and returns false.
func BindJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(target); err != nil {
		render.Fail(w, http.StatusBadRequest, "Invalid JSON", decodeMessage(err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		render.Fail(w, http.StatusBadRequest, "Invalid JSON", "body must contain a single JSON object")
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		render.Fail(w, http.StatusBadRequest, "Invalid fields", validator.Messages(err)...)
		return false
	}
	return true
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr):
		return typeErr.Field + " has the wrong type"
	case errors.As(err, &maxErr):
		return "body too large"
	case errors.Is(err, io.EOF):
		return "body is empty"
	default:
		return "malformed JSON"
	}
}
