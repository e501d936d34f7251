// Package web holds the JSON response helpers shared by the HTTP handlers.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"trinh-cafe/internal/apperr"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError writes a domain error as JSON, mapping its kind to an HTTP
// status. Invalid-state errors additionally carry currentStatus and
// requiredStatus so callers can explain the rejection.
func WriteError(w http.ResponseWriter, err error) {
	body := map[string]interface{}{"error": errorMessage(err)}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		if domainErr.CurrentStatus != "" {
			body["currentStatus"] = domainErr.CurrentStatus
		}
		if domainErr.RequiredStatus != "" {
			body["requiredStatus"] = domainErr.RequiredStatus
		}
	}

	WriteJSON(w, apperr.HTTPStatus(err), body)
}

// errorMessage hides internal failure details from clients.
func errorMessage(err error) string {
	if apperr.KindOf(err) == apperr.KindInternal {
		return "Server error"
	}
	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

// WriteBadRequest writes a plain 400 with a message.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
