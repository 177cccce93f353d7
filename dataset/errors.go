package dataset

import "errors"

// Loader failure taxonomy. Both abort the load entirely — a dashboard is
// either fed a fully processed table or nothing. Per-cell coercion
// failures are not errors; they degrade the single value to "no value".
var (
	// ErrFileNotFound means the input path does not exist.
	ErrFileNotFound = errors.New("dataset: file not found")
	// ErrParse means the file could not be read as a table.
	ErrParse = errors.New("dataset: cannot parse file")
)
