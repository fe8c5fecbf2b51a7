package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/departments/dto"
	"campushub_backend/internals/features/academics/departments/model"
	helper "campushub_backend/internals/helpers"
)

type DepartmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validator: validator.New()}
}

// POST /departments
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.DepartmentModel{
		DepartmentCode: req.Code,
		DepartmentName: req.Name,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "department code already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "department created", row)
}

// GET /departments
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.DepartmentModel{})
	if v := c.Query("search"); v != "" {
		q = q.Where("department_name ILIKE ? OR department_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.DepartmentModel
	err := q.Order("department_code").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /departments/:id
func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}

	var row model.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "department_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /departments/:id
func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "department_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Code != nil {
		row.DepartmentCode = *req.Code
	}
	if req.Name != nil {
		row.DepartmentName = *req.Name
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "department code already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "department updated", row)
}

// DELETE /departments/:id
// Refused while programs, courses or faculty still reference the department.
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
	}

	ctx := c.UserContext()
	dependents := []struct {
		table, fk, deletedAt, what string
	}{
		{"programs", "program_department_id", "program_deleted_at", "programs"},
		{"courses", "course_department_id", "course_deleted_at", "courses"},
		{"faculty", "faculty_department_id", "faculty_deleted_at", "faculty members"},
	}
	for _, d := range dependents {
		var n int64
		if err := ctl.DB.WithContext(ctx).Table(d.table).
			Where(d.fk+" = ? AND "+d.deletedAt+" IS NULL", id).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "department still has "+d.what)
		}
	}

	res := ctl.DB.WithContext(ctx).
		Where("department_id = ?", id).
		Delete(&model.DepartmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "department not found")
	}
	return helper.JsonDeleted(c, "department deleted", fiber.Map{"department_id": id})
}
