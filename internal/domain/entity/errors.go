package entity

import "errors"

var (
	// ErrFetchFailed the product page could not be retrieved at all
	// (timeout, connection refused, non-2xx status)
	ErrFetchFailed = errors.New("product page fetch failed")

	// ErrNotProductURL the text contained a URL but not a supported marketplace one
	ErrNotProductURL = errors.New("not a supported product URL")

	// ErrNoSession a handler ran for a chat with no stored record
	ErrNoSession = errors.New("no active session for chat")
)
