package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/courses/dto"
	"campushub_backend/internals/features/academics/courses/model"
	helper "campushub_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validator: validator.New()}
}

// POST /courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.CourseModel{
		CourseCode:         req.Code,
		CourseName:         req.Name,
		CourseDepartmentID: req.DepartmentID,
		CourseProgramID:    req.ProgramID,
		CourseSemesterID:   req.SemesterID,
		CourseCredits:      req.Credits,
		CourseFacultyID:    req.FacultyID,
	}
	if req.MaxCapacity > 0 {
		row.CourseMaxCapacity = req.MaxCapacity
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "course code already exists for this semester")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "course created", row)
}

// GET /courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if v := c.Query("semester_id"); v != "" {
		semesterID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid semester id")
		}
		q = q.Where("course_semester_id = ?", semesterID)
	}
	if v := c.Query("faculty_id"); v != "" {
		facultyID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid faculty id")
		}
		q = q.Where("course_faculty_id = ?", facultyID)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("course_name ILIKE ? OR course_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	err := q.Order("course_code").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var row model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "course_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "course_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Name != nil {
		row.CourseName = *req.Name
	}
	if req.Credits != nil {
		row.CourseCredits = *req.Credits
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity < row.CourseEnrolledCount {
			return helper.JsonError(c, fiber.StatusBadRequest, "capacity below current enrolled count")
		}
		row.CourseMaxCapacity = *req.MaxCapacity
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "course code already exists for this semester")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "course updated", row)
}

// PATCH /courses/:id/faculty
// Reassigning ownership immediately moves write authority over the
// course's attendance, exams and marks to the new owner.
func (ctl *CourseController) AssignFaculty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var req dto.AssignFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	ctx := c.UserContext()
	if req.FacultyID != nil {
		var n int64
		if err := ctl.DB.WithContext(ctx).Table("faculty").
			Where("faculty_id = ? AND faculty_deleted_at IS NULL", *req.FacultyID).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "faculty member not found")
		}
	}

	var row model.CourseModel
	if err := ctl.DB.WithContext(ctx).First(&row, "course_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	row.CourseFacultyID = req.FacultyID
	if err := ctl.DB.WithContext(ctx).Model(&row).
		Update("course_faculty_id", req.FacultyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "course faculty updated", row)
}

// DELETE /courses/:id
// Refused while enrollments or exams still reference the course.
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	ctx := c.UserContext()
	var enrollments int64
	if err := ctl.DB.WithContext(ctx).Table("enrollments").
		Where("enrollment_course_id = ?", id).
		Count(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if enrollments > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "course still has enrollments")
	}

	var exams int64
	if err := ctl.DB.WithContext(ctx).Table("exams").
		Where("exam_course_id = ? AND exam_deleted_at IS NULL", id).
		Count(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exams > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "course still has exams")
	}

	res := ctl.DB.WithContext(ctx).
		Where("course_id = ?", id).
		Delete(&model.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": id})
}
