package errors

import "errors"

var (
	ErrUnauthorized             = errors.New("unauthorized access")
	ErrForbidden                = errors.New("forbidden access")
	ErrNotHRManager             = errors.New("forbidden access: only hr managers allowed")
	ErrInvalidRequest           = errors.New("invalid request")
	ErrMissingAssetFields       = errors.New("missing required fields: name, quantity, or type")
	ErrInvalidRole              = errors.New("invalid role")
	ErrInvalidListFilter        = errors.New("invalid list filter")
	ErrUserNotFound             = errors.New("user not found")
	ErrHRNotFound               = errors.New("hr not found")
	ErrAssetNotFound            = errors.New("asset not found")
	ErrRequestNotFound          = errors.New("request not found")
	ErrAffiliationNotFound      = errors.New("affiliation not found")
	ErrCapacityExceeded         = errors.New("package limit reached")
	ErrInvalidStateTransition   = errors.New("request status does not allow this transition")
	ErrAssetOutOfStock          = errors.New("asset is out of stock")
	ErrAssetNotReturnable       = errors.New("asset is not returnable")
	ErrAlreadyAffiliated        = errors.New("employee is already affiliated")
	ErrSessionIDMissing         = errors.New("session id missing")
	ErrPaymentNotCompleted      = errors.New("payment not completed")
	ErrInvalidSlotCount         = errors.New("invalid slot count")
	ErrInvalidCheckout          = errors.New("invalid checkout request")
	ErrDuplicatePayment         = errors.New("payment already processed")
	ErrPaymentProcessor         = errors.New("payment processor error")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)
