package handlers

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"componentcreator/catalog"
	"componentcreator/metrics"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Errors  validation.Errors `json:"errors,omitempty"`
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// statusFor walks the error chain and picks the response code.
func statusFor(err error) int {
	var nf *catalog.NotFoundError
	var verrs validation.Errors
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func outcomeFor(err error) string {
	switch statusFor(err) {
	case http.StatusNotFound:
		return metrics.OutcomeNotFound
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// respondError logs err, counts the failed query and writes the JSON error
// body. Internal errors other than data integrity problems are not echoed
// to the client.
func respondError(d *Deps, e *core.RequestEvent, op string, err error) error {
	code := statusFor(err)
	metrics.ObserveQuery(op, outcomeFor(err))

	resp := ErrorResponse{Message: err.Error(), Code: code}
	if code == http.StatusInternalServerError {
		d.Log.Error(op+": request failed", zap.Error(err))
		if !errors.Is(err, catalog.ErrDataIntegrity) {
			resp.Message = "internal server error"
		}
	} else {
		d.Log.Debug(op+": request rejected", zap.Int("status", code), zap.Error(err))
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		resp.Message = "validation failed"
		resp.Errors = verrs
	}
	return e.JSON(code, resp)
}

func respondOK(e *core.RequestEvent, op string, body any) error {
	metrics.ObserveQuery(op, metrics.OutcomeOK)
	return e.JSON(http.StatusOK, body)
}
