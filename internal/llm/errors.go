package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no API key is configured for the service.
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrDisabled indicates the fallback service was switched off.
	ErrDisabled = errors.New("llm fallback disabled")

	// ErrUnavailable indicates the completion endpoint is unreachable.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
