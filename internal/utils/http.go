package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

// WriteJSON marshals data and writes it with statusCode. When data cannot be
// marshalled nothing but a plain 500 reaches the client and the marshal error
// is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, contentTypeJSON, jsonData, statusCode)
}

// WriteText writes body as text/plain with statusCode.
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	return write(w, contentTypeText, []byte(body), statusCode)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
