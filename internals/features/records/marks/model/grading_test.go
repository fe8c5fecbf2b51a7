package model

import (
	"testing"

	examModel "campushub_backend/internals/features/records/exams/model"
)

func TestGradeForBandBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.999, "A"},
		{80, "A"},
		{79.999, "B+"},
		{70, "B+"},
		{69.999, "B"},
		{60, "B"},
		{59.999, "C+"},
		{50, "C+"},
		{49.999, "C"},
		{45, "C"},
		{44.999, "D"},
		{40, "D"},
		{39.999, "F"},
		{39, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := GradeFor(tc.percentage); got != tc.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tc.percentage, got, tc.want)
		}
	}
}

func TestComputeDerivedWorkedExample(t *testing.T) {
	exam := &examModel.ExamModel{ExamMaxMarks: 50, ExamPassingMarks: 20}

	d := ComputeDerived(35, exam.ExamMaxMarks, exam)
	if d.Percentage != 70 {
		t.Fatalf("percentage = %v, want 70", d.Percentage)
	}
	if d.Grade != "B+" {
		t.Fatalf("grade = %q, want B+", d.Grade)
	}
	if d.IsPassed == nil || !*d.IsPassed {
		t.Fatal("35/50 against passing 20 must pass")
	}

	d = ComputeDerived(15, exam.ExamMaxMarks, exam)
	if d.Percentage != 30 {
		t.Fatalf("percentage = %v, want 30", d.Percentage)
	}
	if d.Grade != "F" {
		t.Fatalf("grade = %q, want F", d.Grade)
	}
	if d.IsPassed == nil || *d.IsPassed {
		t.Fatal("15/50 against passing 20 must fail")
	}
}

func TestComputeDerivedPassingBoundary(t *testing.T) {
	exam := &examModel.ExamModel{ExamMaxMarks: 100, ExamPassingMarks: 40}
	d := ComputeDerived(40, exam.ExamMaxMarks, exam)
	if d.IsPassed == nil || !*d.IsPassed {
		t.Fatal("obtained == passing marks must count as passed")
	}
}

func TestComputeDerivedUnresolvedExamLeavesIsPassedUnset(t *testing.T) {
	d := ComputeDerived(35, 50, nil)
	if d.IsPassed != nil {
		t.Fatal("IsPassed must stay unset when the exam cannot be resolved")
	}
	if d.Percentage != 70 || d.Grade != "B+" {
		t.Fatalf("percentage/grade must still be computed, got %v / %q", d.Percentage, d.Grade)
	}
}

func TestComputeDerivedZeroMaxMarks(t *testing.T) {
	d := ComputeDerived(10, 0, nil)
	if d.Percentage != 0 {
		t.Fatalf("zero max marks must yield 0 percent, got %v", d.Percentage)
	}
	if d.Grade != "F" {
		t.Fatalf("grade = %q, want F", d.Grade)
	}
}

func TestComputeDerivedGradeUsesRawRatioNotRoundedPercentage(t *testing.T) {
	// 89.999% rounds to 90.00 for storage but the band stays A.
	d := ComputeDerived(89.999, 100, nil)
	if d.Percentage != 90 {
		t.Fatalf("stored percentage = %v, want 90 (2dp rounding)", d.Percentage)
	}
	if d.Grade != "A" {
		t.Fatalf("grade = %q, want A (band applied before rounding)", d.Grade)
	}
}

func TestGradePointsFor(t *testing.T) {
	cases := map[string]float64{
		"A+": 10, "A": 9, "B+": 8, "B": 7, "C+": 6, "C": 5, "D": 4, "F": 0, "": 0,
	}
	for grade, want := range cases {
		if got := GradePointsFor(grade); got != want {
			t.Errorf("GradePointsFor(%q) = %v, want %v", grade, got, want)
		}
	}
}
