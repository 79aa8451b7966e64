package httpapi

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("failed to encode response",
			slog.String("err", err.Error()),
		)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps status errors from the store and form layers onto http
// codes. Anything that is not a status error is a storage failure.
func respondError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	if !ok {
		slog.Default().Error("internal error",
			slog.String("err", err.Error()),
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	switch st.Code() {
	case codes.InvalidArgument:
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: st.Message()})
	case codes.NotFound:
		respondJSON(w, http.StatusNotFound, errorResponse{Error: st.Message()})
	case codes.AlreadyExists:
		respondJSON(w, http.StatusConflict, errorResponse{Error: st.Message()})
	default:
		slog.Default().Error("internal error",
			slog.String("err", err.Error()),
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
