package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/programs/dto"
	"campushub_backend/internals/features/academics/programs/model"
	helper "campushub_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validator: validator.New()}
}

// POST /programs
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.ProgramModel{
		ProgramCode:              req.Code,
		ProgramName:              req.Name,
		ProgramDepartmentID:      req.DepartmentID,
		ProgramDurationSemesters: req.DurationSemesters,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "program code already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "program created", row)
}

// GET /programs
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ProgramModel{})
	if v := c.Query("department_id"); v != "" {
		departmentID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
		}
		q = q.Where("program_department_id = ?", departmentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ProgramModel
	err := q.Order("program_code").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /programs/:id
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid program id")
	}

	var row model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "program_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /programs/:id
func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid program id")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "program_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Code != nil {
		row.ProgramCode = *req.Code
	}
	if req.Name != nil {
		row.ProgramName = *req.Name
	}
	if req.DepartmentID != nil {
		row.ProgramDepartmentID = *req.DepartmentID
	}
	if req.DurationSemesters != nil {
		row.ProgramDurationSemesters = *req.DurationSemesters
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "program code already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "program updated", row)
}

// DELETE /programs/:id
// Refused while students or semesters still reference the program.
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid program id")
	}

	ctx := c.UserContext()
	var students int64
	if err := ctl.DB.WithContext(ctx).Table("students").
		Where("student_program_id = ? AND student_deleted_at IS NULL", id).
		Count(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if students > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "program still has students")
	}

	var semesters int64
	if err := ctl.DB.WithContext(ctx).Table("semesters").
		Where("semester_program_id = ? AND semester_deleted_at IS NULL", id).
		Count(&semesters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if semesters > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "program still has semesters")
	}

	res := ctl.DB.WithContext(ctx).
		Where("program_id = ?", id).
		Delete(&model.ProgramModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "program not found")
	}
	return helper.JsonDeleted(c, "program deleted", fiber.Map{"program_id": id})
}
