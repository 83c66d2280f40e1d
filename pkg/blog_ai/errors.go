package blogai

import "errors"

var (
	// ErrMissingAPIKey indicates no API key was configured for the provider.
	ErrMissingAPIKey = errors.New("missing AI API key")

	// ErrEmptyResponse indicates the model answered without any text.
	ErrEmptyResponse = errors.New("unexpected response format from AI provider")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid AI output format")

	// ErrUnknownProvider indicates the configured provider is not supported.
	ErrUnknownProvider = errors.New("unknown AI provider")
)
