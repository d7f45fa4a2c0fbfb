// Package server exposes triangulation over HTTP. It fetches the requested
// point set from the point set manager, triangulates it and answers with the
// Triangles payload.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/osuushi/triangulator"
	"github.com/osuushi/triangulator/psm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Error codes carried in JSON error bodies.
const (
	CodeInvalidID          = "INVALID_ID_FORMAT"
	CodeNotFound           = "NOT_FOUND"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// Fetcher retrieves PointSet payloads by id. psm.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

type Server struct {
	fetcher Fetcher
	logger  *zap.Logger
	mux     *http.ServeMux
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func New(fetcher Fetcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		fetcher: fetcher,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /triangulation/{pointSetId}", s.handleTriangulation)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleTriangulation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("pointSetId")
	logger := s.logger.With(zap.String("point_set_id", id))

	if _, err := uuid.Parse(id); err != nil {
		writeError(w, logger, http.StatusBadRequest, CodeInvalidID, "PointSetID must be a valid UUID.")
		return
	}

	pointSet, err := s.fetcher.Fetch(r.Context(), id)
	switch {
	case errors.Is(err, psm.ErrPointSetNotFound):
		writeError(w, logger, http.StatusNotFound, CodeNotFound, err.Error())
		return
	case errors.Is(err, psm.ErrUnavailable):
		logger.Warn("point set manager unavailable", zap.Error(err))
		writeError(w, logger, http.StatusServiceUnavailable, CodeServiceUnavailable, err.Error())
		return
	case err != nil:
		logger.Error("fetching point set", zap.Error(err))
		writeError(w, logger, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	points, err := triangulator.Decode(pointSet)
	if err != nil {
		logger.Error("decoding point set", zap.Error(err))
		writeError(w, logger, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}
	if skipped := triangulator.NonFinite(points); len(skipped) > 0 {
		logger.Warn("point set has non-finite points, they are left out",
			zap.Int("count", len(skipped)),
			zap.Ints("indices", skipped),
		)
	}
	if triangulator.Collinear(points) {
		logger.Warn("point set is collinear, triangulation will be empty", zap.Int("points", len(points)))
	}

	triangles, err := triangulator.Triangulate(points)
	if err != nil {
		logger.Error("triangulating", zap.Error(err), zap.Bool("internal", errors.Is(err, triangulator.ErrInternal)))
		writeError(w, logger, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	body, err := triangulator.Encode(points, triangles)
	if err != nil {
		logger.Error("encoding triangles", zap.Error(err))
		writeError(w, logger, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Warn("writing response", zap.Error(err))
		return
	}
	logger.Info("triangulated",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(triangles)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Code: code, Message: message}); err != nil {
		logger.Warn("failed to encode json error response", zap.Error(err))
	}
}
