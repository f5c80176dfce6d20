// Package usecase はEODデータ操作のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrTooManySymbols is returned when a request names more symbols than one request may carry.
	ErrTooManySymbols = errors.New("too many symbols")

	// ErrLimitExceeded is returned when the requested page size is above the maximum.
	ErrLimitExceeded = errors.New("limit exceeds maximum")

	// ErrOffsetExceeded is returned when the requested offset does not fit a database offset.
	ErrOffsetExceeded = errors.New("offset exceeds maximum")
)
