package batch

import (
	"errors"
	"fmt"
	"testing"
)

func TestRunContinuesPastFailures(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	res := Run(items,
		func(i int) string { return fmt.Sprintf("item-%d", i) },
		func(i int) (int, Outcome, error) {
			if i%2 == 0 {
				return 0, OutcomeCreated, errors.New("even numbers rejected")
			}
			return i * 10, OutcomeCreated, nil
		})

	if got := len(res.Successful); got != 3 {
		t.Fatalf("successful = %d, want 3", got)
	}
	if got := len(res.Failures); got != 2 {
		t.Fatalf("failures = %d, want 2", got)
	}
	if res.Failures[0].Key != "item-2" || res.Failures[0].Reason != "even numbers rejected" {
		t.Fatalf("unexpected first failure: %+v", res.Failures[0])
	}
	// order preserved for the rows that made it through
	if res.Successful[0] != 10 || res.Successful[2] != 50 {
		t.Fatalf("unexpected successful rows: %v", res.Successful)
	}
}

func TestRunSeparatesCreatedFromUpdated(t *testing.T) {
	type row struct{ id int }
	items := []int{1, 2, 3}
	res := Run(items,
		func(i int) string { return fmt.Sprintf("%d", i) },
		func(i int) (row, Outcome, error) {
			if i == 2 {
				return row{i}, OutcomeUpdated, nil
			}
			return row{i}, OutcomeCreated, nil
		})

	rep := res.Report()
	if rep.Successful != 2 || rep.Updated != 1 || len(rep.Failed) != 0 {
		t.Fatalf("report = %+v, want 2 created / 1 updated / 0 failed", rep)
	}
	if got := len(res.Rows()); got != 3 {
		t.Fatalf("Rows() = %d, want 3", got)
	}
}

func TestRunEmptyInput(t *testing.T) {
	res := Run(nil,
		func(i int) string { return "" },
		func(i int) (int, Outcome, error) { return 0, OutcomeCreated, nil })

	rep := res.Report()
	if rep.Successful != 0 || rep.Updated != 0 {
		t.Fatalf("empty batch must report zero counts, got %+v", rep)
	}
	if rep.Failed == nil || len(rep.Failed) != 0 {
		t.Fatal("report must carry an empty (non-nil) failed list")
	}
}

func TestRunAllFailuresDoesNotAbort(t *testing.T) {
	items := []string{"a", "b"}
	res := Run(items,
		func(s string) string { return s },
		func(s string) (string, Outcome, error) {
			return "", OutcomeCreated, errors.New("duplicate key")
		})

	if len(res.Failures) != 2 {
		t.Fatalf("failures = %d, want 2", len(res.Failures))
	}
	if res.Failures[1].Key != "b" {
		t.Fatalf("failure keys must identify the input row, got %q", res.Failures[1].Key)
	}
}
