package http

import (
	"errors"
	"net/http"

	"sendsafe/internal/core/domain/model/booking"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, cause error) error {
	message := cause.Error()
	var he *echo.HTTPError
	if errors.As(cause, &he) {
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if he.Internal != nil && he.Internal.Error() != message {
			message += ": " + he.Internal.Error()
		}
	}

	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func validationFailed(ctx echo.Context, err error) error {
	issues := validationIssues(err)
	if len(issues) == 0 {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusUnprocessableEntity, ValidationProblem{
		Code:    http.StatusUnprocessableEntity,
		Message: "Required fields are blank",
		Issues:  issues,
	})
}

// validationIssues collects every booking.ValidationError in an error tree.
func validationIssues(err error) []ValidationIssue {
	var issues []ValidationIssue

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if verr, ok := e.(*booking.ValidationError); ok {
			missing := make([]string, len(verr.Missing))
			for i, f := range verr.Missing {
				missing[i] = string(f)
			}
			issues = append(issues, ValidationIssue{
				Step:      verr.Step,
				StepTitle: verr.Step.String(),
				Missing:   missing,
				Message:   verr.Error(),
			})
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return issues
}
