package core

import "fmt"

// IdentifierError represents a failure of the submission ID generator.
// Field-level validation problems are not errors; they live in the form's
// error map. A broken ID generator, by contrast, must surface hard.
type IdentifierError struct {
	Message string
	Err     error
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("identifier: %s", e.Message)
}

func (e *IdentifierError) Unwrap() error {
	return e.Err
}

// DatasetError represents a failure loading or decoding the school dataset.
type DatasetError struct {
	Path    string
	Message string
	Err     error
}

func (e *DatasetError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("dataset %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("dataset: %s", e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// RecordLogError represents a failure persisting an emitted record.
type RecordLogError struct {
	Operation string
	Message   string
	Err       error
}

func (e *RecordLogError) Error() string {
	return fmt.Sprintf("record log %s: %s", e.Operation, e.Message)
}

func (e *RecordLogError) Unwrap() error {
	return e.Err
}
