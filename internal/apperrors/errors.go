package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrEventClosed indicates a mutation or closing attempt on an event that is already CLOSED.
var ErrEventClosed = errors.New("event is already closed")

// ErrMissingCatalogRef indicates a line item or extra selection referencing
// a catalog entry that no longer exists. Only raised in strict mode; the
// default policy prices missing references as zero.
var ErrMissingCatalogRef = errors.New("missing catalog reference")
