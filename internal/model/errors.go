package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage = "internal server error"
	ErrNoItemsMessage        = "no items provided"
	ErrOrderNotFoundMessage  = "not found"
	ErrReviewFieldsMessage   = "name & comment required"
)

// ErrStorageFailure is surfaced by the record store instead of the fail-open
// empty collection when strict storage is enabled.
var ErrStorageFailure = errors.New("storage failure")
