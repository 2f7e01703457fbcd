package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response body with the given status code
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleProcessReceipt validates a receipt document, scores it, and
// returns the ID under which the points were stored
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid JSON",
		})
		return
	}

	if errs := Validate(doc); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "The receipt is invalid. Please verify input.",
			"errors":  errs,
		})
		return
	}

	// A document with no validation errors always round-trips into the
	// typed form.
	var receipt Receipt
	raw, err := json.Marshal(doc)
	if err == nil {
		err = json.Unmarshal(raw, &receipt)
	}
	if err != nil {
		slog.Error("Error converting receipt document", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid JSON",
		})
		return
	}

	id, err := s.service.ProcessReceipt(receipt)
	if err != nil {
		slog.Error("Error processing receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleGetPoints returns the points awarded to a processed receipt
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	points, err := s.service.GetPoints(id)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": "No receipt found for that id",
		})
		return
	}
	if err != nil {
		slog.Error("Error getting points", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}
