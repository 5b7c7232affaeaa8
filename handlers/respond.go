package handlers

import (
	"encoding/json"
	"net/http"

	"todo-api/apperr"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondErr writes the error's fixed body; NotFound and Internal send an
// empty body, Unauthorized sends `{}`.
func respondErr(w http.ResponseWriter, err *apperr.Error) {
	switch err.Kind {
	case apperr.NotFound, apperr.Internal:
		w.WriteHeader(err.Status())
	case apperr.Unauthorized:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(err.Status())
		w.Write([]byte("{}"))
	default:
		respondJSON(w, err.Status(), err)
	}
}

func notFound(w http.ResponseWriter) {
	respondErr(w, &apperr.Error{Kind: apperr.NotFound})
}

func internalError(w http.ResponseWriter) {
	respondErr(w, &apperr.Error{Kind: apperr.Internal})
}
