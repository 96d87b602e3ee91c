package httpserver

import (
	"errors"
	"net/http"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, httptransport.ErrorResponse{Code: code, Message: message})
}

func writeDomainError(c *gin.Context, err error) {
	status, code, message := mapDomainError(err)
	writeError(c, status, code, message)
}

func mapDomainError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", domainerrors.ErrUnauthorized.Error()
	case errors.Is(err, domainerrors.ErrNotHRManager),
		errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden", err.Error()
	case errors.Is(err, domainerrors.ErrInvalidRequest),
		errors.Is(err, domainerrors.ErrMissingAssetFields),
		errors.Is(err, domainerrors.ErrInvalidRole),
		errors.Is(err, domainerrors.ErrInvalidListFilter):
		return http.StatusBadRequest, "validation_failed", err.Error()
	case errors.Is(err, domainerrors.ErrSessionIDMissing):
		return http.StatusBadRequest, "payment_session_missing", err.Error()
	case errors.Is(err, domainerrors.ErrPaymentNotCompleted):
		return http.StatusBadRequest, "payment_not_completed", err.Error()
	case errors.Is(err, domainerrors.ErrInvalidSlotCount):
		return http.StatusBadRequest, "payment_invalid_slots", err.Error()
	case errors.Is(err, domainerrors.ErrInvalidCheckout):
		return http.StatusBadRequest, "payment_invalid_checkout", err.Error()
	case errors.Is(err, domainerrors.ErrCapacityExceeded):
		return http.StatusBadRequest, "capacity_exceeded", err.Error()
	case errors.Is(err, domainerrors.ErrUserNotFound),
		errors.Is(err, domainerrors.ErrHRNotFound),
		errors.Is(err, domainerrors.ErrAssetNotFound),
		errors.Is(err, domainerrors.ErrRequestNotFound),
		errors.Is(err, domainerrors.ErrAffiliationNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domainerrors.ErrInvalidStateTransition):
		return http.StatusConflict, "invalid_state_transition", err.Error()
	case errors.Is(err, domainerrors.ErrAssetOutOfStock):
		return http.StatusConflict, "out_of_stock", err.Error()
	case errors.Is(err, domainerrors.ErrAssetNotReturnable):
		return http.StatusConflict, "not_returnable", err.Error()
	case errors.Is(err, domainerrors.ErrAlreadyAffiliated):
		return http.StatusConflict, "already_affiliated", err.Error()
	case errors.Is(err, domainerrors.ErrPaymentProcessor):
		return http.StatusInternalServerError, "payment_processor_error", err.Error()
	default:
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}
