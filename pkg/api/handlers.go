package api

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/maya-clifford/final-case/pkg/domain"
	"github.com/maya-clifford/final-case/pkg/logger"
)

// Handler provides HTTP handlers for the workout API
type Handler struct {
	storage  domain.WorkoutStore
	log      logrus.FieldLogger
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler creates a new API handler with dependency injection
func NewHandler(storage domain.WorkoutStore, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		storage:  storage,
		log:      log,
		validate: newValidator(),
		now:      time.Now,
	}
}

// logger returns the handler logger tagged with the request id, if any.
func (h *Handler) logger(ctx context.Context) logrus.FieldLogger {
	if id := RequestID(ctx); id != "" {
		return h.log.WithField("request_id", id)
	}
	return h.log
}
