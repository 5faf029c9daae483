package lawyer

import "errors"

var (
	// ErrEngineRequired is returned when no search engine is provided
	ErrEngineRequired = errors.New("search engine is required")

	// ErrAnswererRequired is returned when no answerer is provided
	ErrAnswererRequired = errors.New("answerer is required")

	// ErrChatRepositoryRequired is returned when no chat repository is provided
	ErrChatRepositoryRequired = errors.New("chat repository is required")

	// ErrEmptyDeviceID is returned when a question has no device ID
	ErrEmptyDeviceID = errors.New("device ID is required")

	// ErrEmptyQuestion is returned when a question is blank
	ErrEmptyQuestion = errors.New("question is required")
)
