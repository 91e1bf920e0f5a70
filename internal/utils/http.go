package utils

import (
	"net/http"

	"github.com/go-chi/render"
)

// WriteJSON renders data as a JSON response with the given status code.
//
// The body is encoded with go-chi/render, which also sets
// "Content-Type: application/json".
//
// Example usage:
//
//	utils.WriteJSON(w, r, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// WriteMessage renders {"message": message} with the given status code.
func WriteMessage(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	WriteJSON(w, r, map[string]string{"message": message}, statusCode)
}
