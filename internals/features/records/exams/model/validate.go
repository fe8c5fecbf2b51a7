package model

import "errors"

// ErrInvalidExamConfiguration: passing marks exceed max marks. Enforced at
// write time, before anything is persisted.
var ErrInvalidExamConfiguration = errors.New("invalid exam configuration: passing marks cannot exceed max marks")

func ValidateMarksConfig(maxMarks, passingMarks float64) error {
	if maxMarks <= 0 {
		return errors.New("invalid exam configuration: max marks must be positive")
	}
	if passingMarks < 0 {
		return errors.New("invalid exam configuration: passing marks cannot be negative")
	}
	if passingMarks > maxMarks {
		return ErrInvalidExamConfiguration
	}
	return nil
}
