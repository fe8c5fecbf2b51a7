package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"campushub_backend/internals/features/announcements/dto"
	"campushub_backend/internals/features/announcements/model"
	helper "campushub_backend/internals/helpers"
)

type AnnouncementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /announcements
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.AnnouncementModel{
		AnnouncementTitle:       req.Title,
		AnnouncementBody:        req.Body,
		AnnouncementAudience:    pq.StringArray(req.Audience),
		AnnouncementCourseID:    req.CourseID,
		AnnouncementMetadata:    req.Metadata,
		AnnouncementIsPublished: req.Publish,
		AnnouncementCreatedBy:   p.UserID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "announcement already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonCreated(c, "announcement created", row)
}

// GET /announcements
// Readers only see published rows addressed to their role; admins see all.
func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AnnouncementModel{})
	if !p.IsAdmin() {
		q = q.Where("announcement_is_published = ? AND ? = ANY(announcement_audience)", true, p.Role)
	}
	if v := c.Query("course_id"); v != "" {
		courseID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
		}
		q = q.Where("announcement_course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AnnouncementModel
	err = q.Order("announcement_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /announcements/:id
func (ctl *AnnouncementController) GetByID(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	q := ctl.DB.WithContext(c.UserContext()).Where("announcement_id = ?", id)
	if !p.IsAdmin() {
		q = q.Where("announcement_is_published = ? AND ? = ANY(announcement_audience)", true, p.Role)
	}

	var row model.AnnouncementModel
	if err := q.First(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "", row)
}

// PUT /announcements/:id
func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.AnnouncementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "announcement_id = ?", id).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, status, msg)
	}

	if req.Title != nil {
		row.AnnouncementTitle = *req.Title
	}
	if req.Body != nil {
		row.AnnouncementBody = *req.Body
	}
	if req.Audience != nil {
		row.AnnouncementAudience = pq.StringArray(req.Audience)
	}
	if req.Metadata != nil {
		row.AnnouncementMetadata = req.Metadata
	}
	if req.Publish != nil {
		row.AnnouncementIsPublished = *req.Publish
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		status, msg := helper.MapPGError(err, "announcement already exists")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "announcement updated", row)
}

// DELETE /announcements/:id
func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "announcement not found")
	}
	return helper.JsonDeleted(c, "announcement deleted", fiber.Map{"announcement_id": id})
}
