package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/semesters/dto"
	"campushub_backend/internals/features/academics/semesters/model"
	helper "campushub_backend/internals/helpers"
)

type SemesterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterController(db *gorm.DB) *SemesterController {
	return &SemesterController{DB: db, Validator: validator.New()}
}

// POST /semesters
func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end date before start date")
	}

	row := model.SemesterModel{
		SemesterProgramID: req.ProgramID,
		SemesterNumber:    req.Number,
		SemesterStartDate: req.StartDate,
		SemesterEndDate:   req.EndDate,
		SemesterIsCurrent: req.IsCurrent,
	}

	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if req.IsCurrent {
			if err := ctl.clearCurrent(tx, req.ProgramID); err != nil {
				return err
			}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		status, msg := helper.MapPGError(err, "semester number already exists for this program")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "semester created", row)
}

// GET /semesters
func (ctl *SemesterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SemesterModel{})
	if v := c.Query("program_id"); v != "" {
		programID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid program id")
		}
		q = q.Where("semester_program_id = ?", programID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SemesterModel
	err := q.Order("semester_number").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /semesters/:id
func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid semester id")
	}

	var row model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "semester_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /semesters/:id
func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid semester id")
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "semester_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.StartDate != nil {
		row.SemesterStartDate = req.StartDate
	}
	if req.EndDate != nil {
		row.SemesterEndDate = req.EndDate
	}
	if row.SemesterStartDate != nil && row.SemesterEndDate != nil && row.SemesterEndDate.Before(*row.SemesterStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end date before start date")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if req.IsCurrent != nil {
			if *req.IsCurrent && !row.SemesterIsCurrent {
				if err := ctl.clearCurrent(tx, row.SemesterProgramID); err != nil {
					return err
				}
			}
			row.SemesterIsCurrent = *req.IsCurrent
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		status, msg := helper.MapPGError(err, "semester number already exists for this program")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "semester updated", row)
}

// DELETE /semesters/:id
// Refused while courses still run in the semester.
func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid semester id")
	}

	ctx := c.UserContext()
	var courses int64
	if err := ctl.DB.WithContext(ctx).Table("courses").
		Where("course_semester_id = ? AND course_deleted_at IS NULL", id).
		Count(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if courses > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "semester still has courses")
	}

	res := ctl.DB.WithContext(ctx).
		Where("semester_id = ?", id).
		Delete(&model.SemesterModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "semester not found")
	}
	return helper.JsonDeleted(c, "semester deleted", fiber.Map{"semester_id": id})
}

// clearCurrent unsets is_current on every other semester of the program so
// at most one row per program carries the flag.
func (ctl *SemesterController) clearCurrent(tx *gorm.DB, programID uuid.UUID) error {
	return tx.Model(&model.SemesterModel{}).
		Where("semester_program_id = ? AND semester_is_current = ?", programID, true).
		Update("semester_is_current", false).Error
}
