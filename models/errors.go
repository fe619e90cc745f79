package models

import (
	"errors"
	"fmt"
)

// Error codes used in diagnostics and internal error handling.
//
// There is deliberately no code for a missing page: a brand/model/year that
// is not published on the source site is an expected empty result, not an
// error.
const (
	ErrCodeNavTimeout   = "NAVIGATION_TIMEOUT"
	ErrCodeNavigation   = "NAVIGATION_FAILED"
	ErrCodeBrowserCrash = "BROWSER_CRASH"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodePersist      = "PERSIST_FAILED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// CrawlError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type CrawlError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *CrawlError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

// NewCrawlError creates a new CrawlError.
func NewCrawlError(code, message string, err error) *CrawlError {
	return &CrawlError{Code: code, Message: message, Err: err}
}

// ErrorCode extracts the crawl error code from err, or ErrCodeInternal when
// err does not wrap a CrawlError.
func ErrorCode(err error) string {
	var ce *CrawlError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeInternal
}
