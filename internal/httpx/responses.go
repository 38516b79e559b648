package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body returned for every client-facing failure,
// validation and business errors alike.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// JSON writes body with a 200 status.
func JSON(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body)
}

// JSONCreated writes body with a 201 status.
func JSONCreated(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusCreated, body)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound writes a bare 404 status with no body.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// JSONError writes the error body shape with the given status.
func JSONError(w http.ResponseWriter, statusCode int, messages ...string) {
	writeJSON(w, statusCode, ErrorResponse{Errors: messages})
}
