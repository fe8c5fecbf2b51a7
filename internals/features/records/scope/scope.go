package scope

import (
	"context"
	"errors"

	"github.com/google/uuid"

	helper "campushub_backend/internals/helpers"
)

// ErrNotOwned is the authorization failure for a principal touching a course
// outside its scope. Callers surface it as 403, never as an empty result.
var ErrNotOwned = errors.New("course is not within the principal's scope")

// Scope is the tagged variant every list/write path consumes uniformly:
// either unrestricted (admin) or restricted to an exact set of course ids.
type Scope struct {
	unrestricted bool
	courseIDs    map[uuid.UUID]struct{}
}

func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

func RestrictedTo(ids []uuid.UUID) Scope {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Scope{courseIDs: set}
}

func (s Scope) IsUnrestricted() bool { return s.unrestricted }

// IsEmpty reports a restricted scope with no courses; list endpoints must
// short-circuit to an empty result set without querying the store.
func (s Scope) IsEmpty() bool { return !s.unrestricted && len(s.courseIDs) == 0 }

func (s Scope) Contains(id uuid.UUID) bool {
	if s.unrestricted {
		return true
	}
	_, ok := s.courseIDs[id]
	return ok
}

func (s Scope) CourseIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.courseIDs))
	for id := range s.courseIDs {
		ids = append(ids, id)
	}
	return ids
}

// CourseSource is the narrow store view the resolver needs; the gorm
// implementation lives in source.go.
type CourseSource interface {
	OwnedCourseIDs(ctx context.Context, facultyID uuid.UUID) ([]uuid.UUID, error)
	CourseFacultyID(ctx context.Context, courseID uuid.UUID) (*uuid.UUID, error)
	ExamCourseID(ctx context.Context, examID uuid.UUID) (uuid.UUID, error)
}

type Resolver struct {
	src CourseSource
}

func NewResolver(src CourseSource) *Resolver {
	return &Resolver{src: src}
}

// CourseScope computes what the principal may see or act on. Admin gets the
// unrestricted sentinel; faculty gets exactly the courses it owns; everyone
// else gets an empty restricted scope. Student-facing reads filter by the
// student's own id and never pass through here.
func (r *Resolver) CourseScope(ctx context.Context, p helper.Principal) (Scope, error) {
	if p.IsAdmin() {
		return Unrestricted(), nil
	}
	if p.IsFaculty() && p.FacultyID != nil {
		ids, err := r.src.OwnedCourseIDs(ctx, *p.FacultyID)
		if err != nil {
			return Scope{}, err
		}
		return RestrictedTo(ids), nil
	}
	return RestrictedTo(nil), nil
}

// CourseOwnedBy is the write gate for a single course. On failure it returns
// ErrNotOwned so the caller rejects with an authorization error instead of
// silently filtering.
func (r *Resolver) CourseOwnedBy(ctx context.Context, p helper.Principal, courseID uuid.UUID) error {
	if p.IsAdmin() {
		return nil
	}
	if !p.IsFaculty() || p.FacultyID == nil {
		return ErrNotOwned
	}
	ownerID, err := r.src.CourseFacultyID(ctx, courseID)
	if err != nil {
		return err
	}
	if ownerID == nil || *ownerID != *p.FacultyID {
		return ErrNotOwned
	}
	return nil
}

// ExamOwnedBy resolves the exam's course and delegates to CourseOwnedBy.
func (r *Resolver) ExamOwnedBy(ctx context.Context, p helper.Principal, examID uuid.UUID) error {
	if p.IsAdmin() {
		return nil
	}
	courseID, err := r.src.ExamCourseID(ctx, examID)
	if err != nil {
		return err
	}
	return r.CourseOwnedBy(ctx, p, courseID)
}
