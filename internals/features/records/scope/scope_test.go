package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/constants"
	helper "campushub_backend/internals/helpers"
)

type fakeSource struct {
	owned       map[uuid.UUID][]uuid.UUID // facultyID -> course ids
	courseOwner map[uuid.UUID]*uuid.UUID  // courseID -> faculty id
	examCourse  map[uuid.UUID]uuid.UUID   // examID -> course id
}

func (f *fakeSource) OwnedCourseIDs(_ context.Context, facultyID uuid.UUID) ([]uuid.UUID, error) {
	return f.owned[facultyID], nil
}

func (f *fakeSource) CourseFacultyID(_ context.Context, courseID uuid.UUID) (*uuid.UUID, error) {
	owner, ok := f.courseOwner[courseID]
	if !ok {
		return nil, errors.New("course not found")
	}
	return owner, nil
}

func (f *fakeSource) ExamCourseID(_ context.Context, examID uuid.UUID) (uuid.UUID, error) {
	courseID, ok := f.examCourse[examID]
	if !ok {
		return uuid.Nil, errors.New("exam not found")
	}
	return courseID, nil
}

func adminPrincipal() helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleAdmin}
}

func facultyPrincipal(facultyID uuid.UUID) helper.Principal {
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleFaculty, FacultyID: &facultyID}
}

func studentPrincipal() helper.Principal {
	sid := uuid.New()
	return helper.Principal{UserID: uuid.New(), Role: constants.RoleStudent, StudentID: &sid}
}

func TestCourseScopeAdminUnrestricted(t *testing.T) {
	r := NewResolver(&fakeSource{})
	s, err := r.CourseScope(context.Background(), adminPrincipal())
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsUnrestricted() {
		t.Fatal("admin scope must be unrestricted")
	}
	if !s.Contains(uuid.New()) {
		t.Fatal("unrestricted scope must contain any course")
	}
}

func TestCourseScopeFacultyExactSet(t *testing.T) {
	facultyID := uuid.New()
	c1, c2, other := uuid.New(), uuid.New(), uuid.New()
	r := NewResolver(&fakeSource{owned: map[uuid.UUID][]uuid.UUID{
		facultyID: {c1, c2},
	}})

	s, err := r.CourseScope(context.Background(), facultyPrincipal(facultyID))
	if err != nil {
		t.Fatal(err)
	}
	if s.IsUnrestricted() {
		t.Fatal("faculty scope must be restricted")
	}
	if !s.Contains(c1) || !s.Contains(c2) {
		t.Fatal("owned courses missing from scope")
	}
	if s.Contains(other) {
		t.Fatal("scope leaked a non-owned course")
	}
	if got := len(s.CourseIDs()); got != 2 {
		t.Fatalf("CourseIDs() = %d ids, want 2", got)
	}
}

func TestCourseScopeFacultyWithNoCoursesIsEmpty(t *testing.T) {
	r := NewResolver(&fakeSource{owned: map[uuid.UUID][]uuid.UUID{}})
	s, err := r.CourseScope(context.Background(), facultyPrincipal(uuid.New()))
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() {
		t.Fatal("faculty with no courses must get an empty scope (list short-circuit)")
	}
}

func TestCourseScopeStudentIsEmpty(t *testing.T) {
	r := NewResolver(&fakeSource{})
	s, err := r.CourseScope(context.Background(), studentPrincipal())
	if err != nil {
		t.Fatal(err)
	}
	if s.IsUnrestricted() || !s.IsEmpty() {
		t.Fatal("student principals never receive course scope")
	}
}

func TestCourseOwnedBy(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	ownedCourse := uuid.New()
	orphanCourse := uuid.New()

	r := NewResolver(&fakeSource{courseOwner: map[uuid.UUID]*uuid.UUID{
		ownedCourse:  &owner,
		orphanCourse: nil, // no faculty assigned
	}})
	ctx := context.Background()

	if err := r.CourseOwnedBy(ctx, adminPrincipal(), ownedCourse); err != nil {
		t.Fatalf("admin must pass the write gate: %v", err)
	}
	if err := r.CourseOwnedBy(ctx, facultyPrincipal(owner), ownedCourse); err != nil {
		t.Fatalf("owner must pass the write gate: %v", err)
	}
	if err := r.CourseOwnedBy(ctx, facultyPrincipal(stranger), ownedCourse); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("non-owner must be denied, got %v", err)
	}
	if err := r.CourseOwnedBy(ctx, facultyPrincipal(owner), orphanCourse); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("unassigned course must deny every faculty, got %v", err)
	}
	if err := r.CourseOwnedBy(ctx, studentPrincipal(), ownedCourse); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("students never get write scope, got %v", err)
	}
}

func TestExamOwnedByDelegatesThroughCourse(t *testing.T) {
	owner := uuid.New()
	courseID := uuid.New()
	examID := uuid.New()

	r := NewResolver(&fakeSource{
		courseOwner: map[uuid.UUID]*uuid.UUID{courseID: &owner},
		examCourse:  map[uuid.UUID]uuid.UUID{examID: courseID},
	})
	ctx := context.Background()

	if err := r.ExamOwnedBy(ctx, facultyPrincipal(owner), examID); err != nil {
		t.Fatalf("exam owner must pass: %v", err)
	}
	if err := r.ExamOwnedBy(ctx, facultyPrincipal(uuid.New()), examID); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("non-owner must be denied, got %v", err)
	}
	if err := r.ExamOwnedBy(ctx, adminPrincipal(), examID); err != nil {
		t.Fatalf("admin must pass without resolving the exam: %v", err)
	}
}
