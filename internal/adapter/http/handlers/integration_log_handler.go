package handlers

import (
	"errors"
	"net/http"

	"quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/adapter/http/middleware"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

// IntegrationLogHandler exposes the read-only integration log endpoints.

type IntegrationLogHandler struct {
	usecase usecase.IIntegrationLogUseCase
}

func NewIntegrationLogHandler(uc usecase.IIntegrationLogUseCase) *IntegrationLogHandler {
	return &IntegrationLogHandler{usecase: uc}
}

// ListLogs returns the log entries visible to the caller, newest first.
func (h *IntegrationLogHandler) ListLogs(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListVisible(c.Request.Context(), caller)
	if err != nil {
		appErr := mapLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntegrationLogs(entries))
}

// ListLogsByQuote filters entries by the quote_id query parameter.
func (h *IntegrationLogHandler) ListLogsByQuote(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListByQuote(c.Request.Context(), caller, c.Query("quote_id"))
	if err != nil {
		appErr := mapLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntegrationLogs(entries))
}

// ListLogsByAction filters entries by the action query parameter.
func (h *IntegrationLogHandler) ListLogsByAction(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListByAction(c.Request.Context(), caller, c.Query("action"))
	if err != nil {
		appErr := mapLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntegrationLogs(entries))
}

func mapLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQuoteIDParam):
		return pkg.NewDomainErrorSimple("MISSING_QUOTE_ID", "quote_id parameter is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingActionParam):
		return pkg.NewDomainErrorSimple("MISSING_ACTION", "action parameter is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
