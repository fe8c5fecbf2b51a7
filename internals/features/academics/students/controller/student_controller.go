package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/students/dto"
	"campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.StudentModel{
		StudentRollNumber:   req.RollNumber,
		StudentName:         req.Name,
		StudentProgramID:    req.ProgramID,
		StudentDepartmentID: req.DepartmentID,
		StudentStatus:       model.StudentStatusActive,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "roll number already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "student created", row)
}

// GET /students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if v := c.Query("program_id"); v != "" {
		programID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid program id")
		}
		q = q.Where("student_program_id = ?", programID)
	}
	if v := c.Query("status"); v != "" {
		status := model.StudentStatus(v)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student status")
		}
		q = q.Where("student_status = ?", status)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("student_name ILIKE ? OR student_roll_number ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	err := q.Order("student_roll_number").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "student_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "student_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Name != nil {
		row.StudentName = *req.Name
	}
	if req.CurrentSemester != nil {
		row.StudentCurrentSemester = *req.CurrentSemester
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "roll number already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "student updated", row)
}

// PATCH /students/:id/status
func (ctl *StudentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Status.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student status")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "student_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	row.StudentStatus = req.Status
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student status updated", row)
}

// DELETE /students/:id
// Refused while any enrollment rows remain for the student.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	ctx := c.UserContext()
	var enrollments int64
	if err := ctl.DB.WithContext(ctx).Table("enrollments").
		Where("enrollment_student_id = ?", id).
		Count(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if enrollments > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "student still has enrollments")
	}

	res := ctl.DB.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
