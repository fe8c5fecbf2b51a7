package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	helper "campushub_backend/internals/helpers"
)

// GET /summaries/courses/:course_id/attendance/export
// Streams the course attendance rollup as an XLSX workbook.
func (ctl *SummaryController) ExportCourseAttendance(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, courseID); err != nil {
		return ctl.scopeError(c, err)
	}

	rows, err := ctl.courseAttendanceRows(c, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Roll Number", "Name", "Attended", "Total Sessions", "Percentage"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "E1", headerStyle)
	}

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.RollNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Attended)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.Total)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), fmt.Sprintf("%d%%", row.Percentage))
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "B", 32)
	f.SetColWidth(sheet, "C", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, attendanceSheetFilename(courseID)))
	return c.SendStream(buf)
}
