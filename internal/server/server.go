// Package server exposes the fee calculators and the form store over a JSON
// HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/iwvelando/lease-fees/internal/formstore"
	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/datetime"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/output"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// Options configures NewHandler.
type Options struct {
	Logger      *zap.Logger
	Store       formstore.Store
	Defaults    formstore.Defaults
	MaxBodySize int64
	Version     string
}

type handler struct {
	logger      *zap.Logger
	store       formstore.Store
	defaults    formstore.Defaults
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = formstore.NewMemoryStore()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	defaults := opts.Defaults
	if defaults.Term == 0 {
		defaults.Term = fees.Term(constants.DefaultTerm)
	}
	if defaults.Multiplier == 0 {
		defaults.Multiplier = constants.DefaultLettingFeeMultiplier
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		store:       store,
		defaults:    defaults,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	r := mux.NewRouter()
	r.Use(h.withRequestID, h.withAccessLog)

	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)
	r.HandleFunc("/api/terms", h.handleTerms).Methods(http.MethodGet)
	r.HandleFunc("/api/weeks", h.handleWeeks).Methods(http.MethodPost)
	r.HandleFunc("/api/calculate/{kind}", h.handleCalculate).Methods(http.MethodPost)
	r.HandleFunc("/api/forms/{kind}", h.handleGetForm).Methods(http.MethodGet)
	r.HandleFunc("/api/forms/{kind}", h.handlePutForm).Methods(http.MethodPut)
	r.HandleFunc("/api/forms/{kind}", h.handleDeleteForm).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	return r
}

type termResponse struct {
	Weeks          int    `json:"weeks"`
	Label          string `json:"label"`
	EffectiveWeeks int    `json:"effectiveWeeks"`
}

type weeksRequest struct {
	MoveOut      string `json:"moveOut"`
	AgreementEnd string `json:"agreementEnd"`
}

type weeksResponse struct {
	Weeks        int    `json:"weeks"`
	MoveOut      string `json:"moveOut"`
	AgreementEnd string `json:"agreementEnd"`
}

type calculateResponse struct {
	output.View
	Form *formstore.FormState `json:"form,omitempty"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleTerms(w http.ResponseWriter, r *http.Request) {
	terms := fees.Terms()
	resp := make([]termResponse, 0, len(terms))
	for _, term := range terms {
		resp = append(resp, termResponse{
			Weeks:          int(term),
			Label:          term.Label(),
			EffectiveWeeks: term.EffectiveWeeks(),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleWeeks(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleWeeks"

	var req weeksRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	dates, err := fees.ParseDateRange(req.MoveOut, req.AgreementEnd)
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}
	weeks, err := dates.Weeks()
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, weeksResponse{
		Weeks:        weeks,
		MoveOut:      datetime.Format(dates.MoveOut),
		AgreementEnd: datetime.Format(dates.AgreementEnd),
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	kind, err := fees.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	var state formstore.FormState
	if !h.decodeJSON(w, r, &state, op) {
		return
	}
	state.Calculator = kind

	result, err := state.Calculate(h.defaults)
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	resp := calculateResponse{View: output.NewView(result)}
	if save, _ := strconv.ParseBool(r.URL.Query().Get("save")); save {
		state.LastResult = &result
		state.UpdatedAt = time.Time{}
		saved, err := h.store.Save(r.Context(), state)
		if err != nil {
			h.respondErr(w, r, err, op)
			return
		}
		resp.Form = &saved
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleGetForm"

	kind, err := fees.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	state, err := h.store.Load(r.Context(), kind)
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

func (h *handler) handlePutForm(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePutForm"

	kind, err := fees.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	var state formstore.FormState
	if !h.decodeJSON(w, r, &state, op) {
		return
	}
	if state.Calculator != "" && state.Calculator != kind {
		h.respondErrorWithOp(w, r, http.StatusBadRequest,
			fmt.Sprintf("calculator %q does not match path %q", state.Calculator, kind), op)
		return
	}
	state.Calculator = kind
	state.UpdatedAt = time.Time{}

	saved, err := h.store.Save(r.Context(), state)
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

func (h *handler) handleDeleteForm(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDeleteForm"

	kind, err := fees.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.respondErr(w, r, err, op)
		return
	}

	if err := h.store.Delete(r.Context(), kind); err != nil {
		h.respondErr(w, r, err, op)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON reads a size-limited JSON body into dst. On failure it writes the
// response and returns false.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		case errors.Is(err, io.EOF):
			h.respondErrorWithOp(w, r, http.StatusBadRequest, "request body is empty", op)
		default:
			h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid JSON payload: %v", err), op)
		}
		return false
	}
	return true
}

// respondErr maps err onto a status code and writes it.
func (h *handler) respondErr(w http.ResponseWriter, r *http.Request, err error, op string) {
	if kind := fees.KindOf(err); kind != "" {
		h.logger.Debug("validation failed",
			zap.String("op", op),
			zap.String("requestId", requestID(r.Context())),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": fees.UserMessage(err),
			"kind":  string(kind),
		})
		return
	}

	switch {
	case errors.Is(err, formstore.ErrNotFound):
		h.respondErrorWithOp(w, r, http.StatusNotFound, err.Error(), op)
	case errors.Is(err, formstore.ErrSchemaVersion):
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
	default:
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("requestId", requestID(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Warn("request rejected", fields...)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// withRequestID keeps a well-formed incoming X-Request-ID and otherwise
// assigns a new one.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (h *handler) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.logger.Info("request",
			zap.String("requestId", requestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
