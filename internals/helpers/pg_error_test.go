package helper

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

// fakePGErr mimics the SQLState() surface of pgx/pq driver errors.
type fakePGErr struct {
	code string
}

func (e *fakePGErr) SQLState() string { return e.code }
func (e *fakePGErr) Error() string    { return "SQLSTATE " + e.code }

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"sqlstate 23505", &fakePGErr{"23505"}, true},
		{"wrapped sqlstate 23505", fmt.Errorf("insert: %w", &fakePGErr{"23505"}), true},
		{"fk violation is not dup", &fakePGErr{"23503"}, false},
		{"string fallback", errors.New(`duplicate key value violates unique constraint "uq_marks_student_exam"`), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateKey(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKey(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&fakePGErr{"23503"}) {
		t.Error("23503 should be a foreign key violation")
	}
	if IsForeignKeyViolation(&fakePGErr{"23505"}) {
		t.Error("23505 is not a foreign key violation")
	}
	if IsForeignKeyViolation(nil) {
		t.Error("nil is not a violation")
	}
}

func TestMapPGError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		dupMessage string
		wantStatus int
		wantMsg    string
	}{
		{"not found", gorm.ErrRecordNotFound, "", 404, "record not found"},
		{"dup with caller message", &fakePGErr{"23505"}, "roll number already exists", 400, "roll number already exists"},
		{"dup without caller message", &fakePGErr{"23505"}, "", 400, "duplicate record (unique constraint)"},
		{"fk violation", &fakePGErr{"23503"}, "", 400, "referenced record not found (foreign key)"},
		{"everything else", errors.New("boom"), "", 500, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapPGError(tt.err, tt.dupMessage)
			if status != tt.wantStatus || msg != tt.wantMsg {
				t.Errorf("MapPGError() = (%d, %q), want (%d, %q)", status, msg, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}
