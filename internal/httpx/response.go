package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diewo77/go-taller/internal/apperr"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Error maps the domain error kinds onto HTTP statuses so handlers stay a
// one-liner on the failure path.
func Error(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	var nf *apperr.NotFoundError
	switch {
	case errors.As(err, &ve):
		JSONError(w, http.StatusUnprocessableEntity, "validation_failed",
			map[string]string{ve.Field: ve.Reason})
	case errors.As(err, &nf):
		JSONError(w, http.StatusNotFound, "not_found",
			map[string]any{"entidad": nf.Entity, "clave": nf.ID})
	case errors.Is(err, apperr.ErrNoData):
		JSONError(w, http.StatusUnprocessableEntity, "no_data", nil)
	case errors.Is(err, apperr.ErrInsufficientData):
		JSONError(w, http.StatusUnprocessableEntity, "insufficient_data", nil)
	default:
		JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
