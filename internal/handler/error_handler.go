package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

func newBadRequestError(format string, args ...any) *domain.DomainError {
	return &domain.DomainError{
		Code:    domain.CodeBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode >= http.StatusInternalServerError {
			h.logError(r, err)
		}
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.logError(r, err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeDuplicateKey:
		return http.StatusConflict
	case domain.CodeValidation, domain.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
