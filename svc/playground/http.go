package playground

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

const maxRequestBytes = 64 << 10

// Request is the body accepted by the playground endpoints. Both fields
// are optional.
type Request struct {
	Message string             `json:"message"`
	Type    notifications.Type `json:"type"`
}

// Router exposes the simulations as POST endpoints:
// /error, /unauthorized and /notification.
func Router(s *Service) chi.Router {
	r := chi.NewRouter()
	r.Post("/error", s.serve(func(r *http.Request, req Request) (Result, error) {
		return s.SimulateError(r.Context(), req.Message)
	}))
	r.Post("/unauthorized", s.serve(func(r *http.Request, req Request) (Result, error) {
		return s.SimulateUnauthorized(r.Context(), req.Message)
	}))
	r.Post("/notification", s.serve(func(r *http.Request, req Request) (Result, error) {
		return s.SimulateNotification(r.Context(), req.Message, req.Type)
	}))
	return r
}

func (s *Service) serve(fn func(*http.Request, Request) (Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			s.write(w, r, http.StatusBadRequest, apierror.New(http.StatusBadRequest, apierror.CodeBadRequest, "Request body must be a JSON object."))
			return
		}

		res, err := fn(r, req)
		switch {
		case errors.Is(err, ErrUnsupportedType):
			s.write(w, r, http.StatusUnprocessableEntity, apierror.New(http.StatusUnprocessableEntity, apierror.CodeValidation, "Error notifications cannot be simulated here."))
		case err != nil:
			s.logger.LogAttrs(r.Context(), slog.LevelError, "simulation failed", logger.Error(err))
			s.write(w, r, http.StatusInternalServerError, apierror.New(http.StatusInternalServerError, "", apierror.DefaultMessage))
		default:
			s.write(w, r, http.StatusOK, res)
		}
	}
}

func (s *Service) write(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to write response", logger.Error(err))
	}
}
