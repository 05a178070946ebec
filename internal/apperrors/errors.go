package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrSourceUnavailable indicates the upstream rate feed could not be reached
// (network error, timeout, or a non-2xx response).
var ErrSourceUnavailable = errors.New("rate source unavailable")

// ErrMalformedResponse indicates the upstream rate feed returned a document
// that does not match the expected structure.
var ErrMalformedResponse = errors.New("malformed rate source response")

// ErrPersistence indicates the storage layer could not complete a read or write.
var ErrPersistence = errors.New("persistence error")

// ErrRatesUnavailable indicates no exchange rates could be resolved at all:
// the fresh fetch failed and no cached table of any age exists.
var ErrRatesUnavailable = errors.New("no exchange rates available")

// ErrRateNotFound indicates a requested currency code is absent from the
// resolved rate table.
var ErrRateNotFound = errors.New("exchange rate not available")
