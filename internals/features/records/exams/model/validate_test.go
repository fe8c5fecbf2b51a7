package model

import (
	"errors"
	"testing"
)

func TestValidateMarksConfig(t *testing.T) {
	cases := []struct {
		name    string
		max     float64
		passing float64
		wantErr bool
	}{
		{"passing below max", 100, 40, false},
		{"passing equals max", 50, 50, false},
		{"passing above max", 50, 51, true},
		{"zero max", 0, 0, true},
		{"negative passing", 100, -1, true},
		{"zero passing", 100, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMarksConfig(tc.max, tc.passing)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateMarksConfig(%v, %v) = %v, wantErr=%v", tc.max, tc.passing, err, tc.wantErr)
			}
		})
	}

	if err := ValidateMarksConfig(50, 51); !errors.Is(err, ErrInvalidExamConfiguration) {
		t.Fatalf("passing > max must return ErrInvalidExamConfiguration, got %v", err)
	}
}

func TestEnumValidity(t *testing.T) {
	if !ExamTypeQuiz.Valid() || !ExamTypePractical.Valid() {
		t.Fatal("known exam types must validate")
	}
	if ExamType("final-boss").Valid() {
		t.Fatal("unknown exam type must not validate")
	}
	if !ExamCategoryInternal.Valid() || ExamCategory("midway").Valid() {
		t.Fatal("exam category validation broken")
	}
	if !ExamStatusScheduled.Valid() || ExamStatus("paused").Valid() {
		t.Fatal("exam status validation broken")
	}
}
