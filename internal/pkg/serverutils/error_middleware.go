package serverutils

import (
	"errors"

	"givebridge-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindInvalidTransition,
		apperr.KindDuplicateClaim,
		apperr.KindAlreadyReviewed:
		return fiber.StatusConflict
	case apperr.KindNotEligible, apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindPaymentCallback:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware turns domain errors bubbling out of handlers into
// the JSON error envelope. Non-domain errors become an opaque 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var domainErr *apperr.Error
		if errors.As(err, &domainErr) {
			status := statusFor(domainErr.Kind)
			return ctx.Status(status).JSON(ErrorResponseWithFields(status, domainErr.Message, domainErr.Fields))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
