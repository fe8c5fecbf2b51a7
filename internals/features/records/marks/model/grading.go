package model

import (
	"math"

	examModel "campushub_backend/internals/features/records/exams/model"
)

// Derived holds the computed fields of a mark. They are recomputed on every
// save from the obtained marks and the referenced exam, never user-supplied.
type Derived struct {
	Percentage float64
	Grade      string
	IsPassed   *bool
}

// GradeFor maps a percentage to its letter grade, inclusive lower bounds.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 45:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}

// GradePointsFor maps a letter grade to the 10-point scale used for the
// enrollment rollup.
func GradePointsFor(grade string) float64 {
	switch grade {
	case "A+":
		return 10
	case "A":
		return 9
	case "B+":
		return 8
	case "B":
		return 7
	case "C+":
		return 6
	case "C":
		return 5
	case "D":
		return 4
	default:
		return 0
	}
}

// Round2 rounds to 2 decimal places; summary-style percentages use this,
// while the attendance ledger rounds to whole numbers.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeDerived derives percentage, grade and pass/fail. The grade band is
// applied to the raw ratio so a 89.999% stays an A even though the stored
// percentage rounds to 90.00. A nil exam leaves IsPassed unset instead of
// failing the write; percentage and grade are still computed from maxMarks.
func ComputeDerived(obtained, maxMarks float64, exam *examModel.ExamModel) Derived {
	var raw float64
	if maxMarks > 0 {
		raw = obtained / maxMarks * 100
	}
	d := Derived{
		Percentage: Round2(raw),
		Grade:      GradeFor(raw),
	}
	if exam != nil {
		passed := obtained >= exam.ExamPassingMarks
		d.IsPassed = &passed
	}
	return d
}
