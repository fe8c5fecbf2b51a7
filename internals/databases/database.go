package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	announcementModel "campushub_backend/internals/features/announcements/model"
	courseModel "campushub_backend/internals/features/academics/courses/model"
	departmentModel "campushub_backend/internals/features/academics/departments/model"
	facultyModel "campushub_backend/internals/features/academics/faculty/model"
	programModel "campushub_backend/internals/features/academics/programs/model"
	semesterModel "campushub_backend/internals/features/academics/semesters/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	attendanceModel "campushub_backend/internals/features/records/attendance/model"
	enrollmentModel "campushub_backend/internals/features/records/enrollments/model"
	examModel "campushub_backend/internals/features/records/exams/model"
	markModel "campushub_backend/internals/features/records/marks/model"
	userModel "campushub_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	// statement_timeout keeps a stuck query from outliving the HTTP request budget
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=campushub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer (transaction pooling) friendly
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] database connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the registered models. The unique
// composite indexes declared on the models are the concurrency-correctness
// mechanism for enrollments, attendance and marks, so this must run before
// the app starts serving.
func Migrate() {
	if err := MigrateModels(DB); err != nil {
		log.Fatalf("[FATAL] migration failed: %v", err)
	}
	log.Println("[INFO] schema migrated")
}

// MigrateModels runs AutoMigrate for every registered model on the given
// connection. Split out from Migrate so test harnesses can build the same
// schema against a throwaway database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&departmentModel.DepartmentModel{},
		&programModel.ProgramModel{},
		&semesterModel.SemesterModel{},
		&facultyModel.FacultyModel{},
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&examModel.ExamModel{},
		&markModel.MarkModel{},
		&announcementModel.AnnouncementModel{},
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
