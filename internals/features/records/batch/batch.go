// Package batch is the shared executor behind bulk enrollment, bulk
// attendance and bulk marks: each row succeeds or fails independently and
// the caller receives an itemized report rather than a single pass/fail.
package batch

type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
)

type Failure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

type Result[R any] struct {
	Successful []R       `json:"-"`
	Updated    []R       `json:"-"`
	Failures   []Failure `json:"failed"`
}

// Report is the wire shape batch endpoints return inside the success
// envelope: counts plus the per-row failures.
type Report struct {
	Successful int       `json:"successful"`
	Updated    int       `json:"updated"`
	Failed     []Failure `json:"failed"`
}

func (r Result[R]) Report() Report {
	failed := r.Failures
	if failed == nil {
		failed = []Failure{}
	}
	return Report{
		Successful: len(r.Successful),
		Updated:    len(r.Updated),
		Failed:     failed,
	}
}

// Rows returns every row the batch applied, creates first.
func (r Result[R]) Rows() []R {
	rows := make([]R, 0, len(r.Successful)+len(r.Updated))
	rows = append(rows, r.Successful...)
	rows = append(rows, r.Updated...)
	return rows
}

// Run applies op to every item sequentially. A failing item is captured as
// {key, reason} and never aborts the rest of the batch; wholesale
// preconditions belong in the caller, before this loop.
func Run[I any, R any](items []I, key func(I) string, op func(I) (R, Outcome, error)) Result[R] {
	var res Result[R]
	for _, item := range items {
		row, outcome, err := op(item)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Key: key(item), Reason: err.Error()})
			continue
		}
		switch outcome {
		case OutcomeUpdated:
			res.Updated = append(res.Updated, row)
		default:
			res.Successful = append(res.Successful, row)
		}
	}
	return res
}
