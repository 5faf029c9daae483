package civic

import "errors"

var (
	// ErrVoteRepositoryRequired is returned when no vote repository is provided
	ErrVoteRepositoryRequired = errors.New("vote repository is required")

	// ErrEngineRequired is returned when no search engine is provided
	ErrEngineRequired = errors.New("search engine is required")

	// ErrEmptyDeviceID is returned when a reaction has no device ID
	ErrEmptyDeviceID = errors.New("device ID is required")
)
