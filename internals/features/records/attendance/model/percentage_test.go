package model

import "testing"

func TestPercentage(t *testing.T) {
	cases := []struct {
		name     string
		attended int64
		total    int64
		want     int
	}{
		{"no sessions yet", 0, 0, 0},
		{"all attended", 10, 10, 100},
		{"none attended", 0, 10, 0},
		{"rounds up", 2, 3, 67},
		{"rounds half up", 1, 8, 13}, // 12.5 -> 13
		{"two thirds", 20, 30, 67},
		{"negative total guarded", 1, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percentage(tc.attended, tc.total); got != tc.want {
				t.Fatalf("Percentage(%d, %d) = %d, want %d", tc.attended, tc.total, got, tc.want)
			}
		})
	}
}

func TestCountsAsAttended(t *testing.T) {
	if !AttendanceStatusPresent.CountsAsAttended() || !AttendanceStatusLate.CountsAsAttended() {
		t.Fatal("present and late both count toward attendance")
	}
	if AttendanceStatusAbsent.CountsAsAttended() || AttendanceStatusExcused.CountsAsAttended() {
		t.Fatal("absent and excused must not count toward attendance")
	}
}
