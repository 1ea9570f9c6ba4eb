// Package http is the JSON-over-HTTP surface of the employee directory.
// It decodes and validates requests, calls the directory service and maps
// service errors to status codes.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/service"
	"github.com/YusovID/employee-directory/internal/validation"
	"github.com/YusovID/employee-directory/pkg/api"
	"github.com/YusovID/employee-directory/pkg/logger/sl"
	"github.com/YusovID/employee-directory/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

// HealthChecker reports whether the employee store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	log       *slog.Logger
	employees service.EmployeeService
	health    HealthChecker
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. health may be nil, in which case /healthz always reports ok.
func NewServer(log *slog.Logger, employees service.EmployeeService, health HealthChecker) *Server {
	return &Server{
		log:       log,
		employees: employees,
		health:    health,
	}
}

// Routes builds the router with middleware, the operational endpoints and the
// employee API generated from swagger/swagger-ui/openapi.yaml.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Mount("/", api.HandlerWithOptions(s, api.ChiServerOptions{
		ErrorHandlerFunc: s.handleParamError,
	}))

	return mux
}

func (s *Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.CreateEmployee"

	var req employeeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	employee, err := s.employees.Create(r.Context(), req.toDomain())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, employee)
}

func (s *Server) GetEmployee(w http.ResponseWriter, r *http.Request, id api.EmployeeID) {
	const op = "internal.transport.http.GetEmployee"

	if err := validation.ValidateID(id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	employee, err := s.employees.Read(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, employee)
}

func (s *Server) UpdateEmployee(w http.ResponseWriter, r *http.Request, id api.EmployeeID) {
	const op = "internal.transport.http.UpdateEmployee"

	if err := validation.ValidateID(id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req employeeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	employee, err := s.employees.Update(r.Context(), id, req.toDomain())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, employee)
}

func (s *Server) GetReportingStructure(w http.ResponseWriter, r *http.Request, id api.EmployeeID) {
	const op = "internal.transport.http.GetReportingStructure"

	if err := validation.ValidateID(id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	structure, err := s.employees.ReportingStructure(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, structure)
}

func (s *Server) GetCompensation(w http.ResponseWriter, r *http.Request, id api.EmployeeID) {
	const op = "internal.transport.http.GetCompensation"

	if err := validation.ValidateID(id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	compensation, err := s.employees.Compensation(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, compensation)
}

func (s *Server) UpdateCompensation(w http.ResponseWriter, r *http.Request, id api.EmployeeID) {
	const op = "internal.transport.http.UpdateCompensation"

	if err := validation.ValidateID(id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req compensationRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	compensation, err := s.employees.UpdateCompensation(r.Context(), id, req.toDomain())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, compensation)
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			s.log.Warn("health check failed", sl.Err(err))
			s.respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParamError answers path parameters the generated router could not bind.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleServiceError(w, r, "internal.transport.http.bindParams", fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err))
}

func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

func (s *Server) respondAPIError(w http.ResponseWriter, code int, apiCode api.ErrorResponseErrorCode, message string) {
	var errResp api.ErrorResponse
	errResp.Error.Code = apiCode
	errResp.Error.Message = message

	s.respond(w, code, errResp)
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := s.decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

func (s *Server) decode(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError logs err and maps it to a status code and error body.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var (
		idErr         *apperrors.InvalidEmployeeIDError
		existsErr     *apperrors.EmployeeAlreadyExistsError
		validationErr *validation.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Info("request rejected", sl.Err(err))
		wrappedErr := fmt.Errorf("%w: %s", apperrors.ErrValidation, validationErr.Error())
		s.respondAPIError(w, http.StatusBadRequest, api.VALIDATIONFAILED, wrappedErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Info("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.INVALIDREQUEST, "invalid request body")
	case errors.As(err, &idErr):
		log.Info("employee not found", sl.Err(err))
		s.respondAPIError(w, http.StatusNotFound, api.INVALIDEMPLOYEEID, idErr.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		log.Info("employee not found", sl.Err(err))
		s.respondAPIError(w, http.StatusNotFound, api.INVALIDEMPLOYEEID, "employee not found")
	case errors.As(err, &existsErr):
		log.Warn("employee id collision", sl.Err(err))
		s.respondAPIError(w, http.StatusConflict, api.EMPLOYEEEXISTS, existsErr.Error())
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		log.Warn("request ended before the store answered", sl.Err(err))
		s.respondAPIError(w, http.StatusServiceUnavailable, api.STOREUNAVAILABLE, "employee store did not answer in time")
	case errors.Is(err, apperrors.ErrStoreFailure):
		log.Error("employee store failure", sl.Err(err))
		s.respondAPIError(w, http.StatusServiceUnavailable, api.STOREUNAVAILABLE, "employee store unavailable")
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondAPIError(w, http.StatusInternalServerError, api.INTERNAL, "internal server error")
	}
}
