package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/faculty/dto"
	"campushub_backend/internals/features/academics/faculty/model"
	helper "campushub_backend/internals/helpers"
)

type FacultyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db, Validator: validator.New()}
}

// POST /faculty
func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.FacultyModel{
		FacultyEmployeeNumber: req.EmployeeNumber,
		FacultyName:           req.Name,
		FacultyDepartmentID:   req.DepartmentID,
		FacultyDesignation:    req.Designation,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "employee number already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "faculty member created", row)
}

// GET /faculty
func (ctl *FacultyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.FacultyModel{})
	if v := c.Query("department_id"); v != "" {
		departmentID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid department id")
		}
		q = q.Where("faculty_department_id = ?", departmentID)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("faculty_name ILIKE ? OR faculty_employee_number ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FacultyModel
	err := q.Order("faculty_employee_number").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /faculty/:id
func (ctl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid faculty id")
	}

	var row model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "faculty_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /faculty/:id
func (ctl *FacultyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid faculty id")
	}

	var req dto.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "faculty_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Name != nil {
		row.FacultyName = *req.Name
	}
	if req.DepartmentID != nil {
		row.FacultyDepartmentID = *req.DepartmentID
	}
	if req.Designation != nil {
		row.FacultyDesignation = *req.Designation
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "employee number already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "faculty member updated", row)
}

// DELETE /faculty/:id
// Refused while the member still owns courses; reassign ownership first.
func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid faculty id")
	}

	ctx := c.UserContext()
	var owned int64
	if err := ctl.DB.WithContext(ctx).Table("courses").
		Where("course_faculty_id = ? AND course_deleted_at IS NULL", id).
		Count(&owned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if owned > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "faculty member still owns courses")
	}

	res := ctl.DB.WithContext(ctx).
		Where("faculty_id = ?", id).
		Delete(&model.FacultyModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "faculty member not found")
	}
	return helper.JsonDeleted(c, "faculty member deleted", fiber.Map{"faculty_id": id})
}
