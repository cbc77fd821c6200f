package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ValidationItem is one entry of a list-shaped "detail", as FastAPI reports
// request validation failures.
type ValidationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// WriteJSON encodes data and writes it with statusCode. If data cannot be
// encoded, a plain 500 is written instead and the encoding error returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteDetail writes {"detail": "<detail>"}.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"detail": detail}, statusCode)
}

// WriteValidationDetail writes a 422 whose detail is a single-item list
// pointing at field of the request body.
func WriteValidationDetail(w http.ResponseWriter, field, msg string) {
	_, _ = WriteJSON(w, map[string][]ValidationItem{
		"detail": {{Loc: []string{"body", field}, Msg: msg, Type: "value_error"}},
	}, http.StatusUnprocessableEntity)
}
