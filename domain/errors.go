package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrKeyNotFound is returned by a Store when the key has never been written
	ErrKeyNotFound = errors.New("key not found")
	// ErrCacheMiss is returned by a cache when it holds nothing usable
	ErrCacheMiss = errors.New("cache miss")

	ErrAlreadySubmitted = errors.New("you have already added a sentence today")
	ErrEmptySentence    = errors.New("please enter a sentence")
	ErrSentenceTooLong  = errors.New("sentence must be 200 characters or less")
)
