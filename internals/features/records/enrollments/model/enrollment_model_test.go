package model

import "testing"

func TestEnrollmentStatusValid(t *testing.T) {
	valid := []EnrollmentStatus{
		EnrollmentStatusEnrolled,
		EnrollmentStatusDropped,
		EnrollmentStatusCompleted,
		EnrollmentStatusWithdrawn,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []EnrollmentStatus{"", "active", "ENROLLED", "graduated"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
