package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	authmw "campushub_backend/internals/middlewares/auth"

	courseRoute "campushub_backend/internals/features/academics/courses/route"
	departmentRoute "campushub_backend/internals/features/academics/departments/route"
	facultyRoute "campushub_backend/internals/features/academics/faculty/route"
	programRoute "campushub_backend/internals/features/academics/programs/route"
	semesterRoute "campushub_backend/internals/features/academics/semesters/route"
	studentRoute "campushub_backend/internals/features/academics/students/route"
	announcementRoute "campushub_backend/internals/features/announcements/route"
	attendanceRoute "campushub_backend/internals/features/records/attendance/route"
	enrollmentRoute "campushub_backend/internals/features/records/enrollments/route"
	examRoute "campushub_backend/internals/features/records/exams/route"
	markRoute "campushub_backend/internals/features/records/marks/route"
	summaryRoute "campushub_backend/internals/features/records/summary/route"
	authRoute "campushub_backend/internals/features/users/auth/route"
)

// SetupRoutes mounts all API groups under /api.
//
//	/api/auth            public (login)
//	/api/admin           admin-only: user + master data administration
//	/api/records         admin and faculty: the write side of the ledger
//	/api/student         student self-service, read-only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Public.
	authRoute.AuthRoutes(api, db)

	// Admin-only administration.
	admin := api.Group("/admin",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles("administrator access required", constants.RoleAdmin),
	)
	authRoute.AuthAdminRoutes(admin, db)
	departmentRoute.DepartmentAdminRoutes(admin, db)
	programRoute.ProgramAdminRoutes(admin, db)
	semesterRoute.SemesterAdminRoutes(admin, db)
	facultyRoute.FacultyAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	announcementRoute.AnnouncementAdminRoutes(admin, db)

	// Academic records: admins get unrestricted scope, faculty are
	// narrowed to their owned courses inside each controller.
	records := api.Group("/records",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles("staff access required", constants.RoleAdmin, constants.RoleFaculty),
	)
	enrollmentRoute.EnrollmentRoutes(records, db)
	attendanceRoute.AttendanceRoutes(records, db)
	examRoute.ExamRoutes(records, db)
	markRoute.MarkRoutes(records, db)
	summaryRoute.SummaryRoutes(records, db)
	courseRoute.CourseRoutes(records, db)
	announcementRoute.AnnouncementRoutes(records, db)

	// Student self-service, read-only.
	student := api.Group("/student",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles("student access required", constants.RoleStudent),
	)
	enrollmentRoute.EnrollmentStudentRoutes(student, db)
	attendanceRoute.AttendanceStudentRoutes(student, db)
	examRoute.ExamStudentRoutes(student, db)
	markRoute.MarkStudentRoutes(student, db)
	summaryRoute.SummaryStudentRoutes(student, db)
	courseRoute.CourseRoutes(student, db)
	announcementRoute.AnnouncementRoutes(student, db)
}
