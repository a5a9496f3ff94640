package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"net/http"

	"school_mgmt/internal/response"

	"github.com/gin-gonic/gin"
)

type SubjectMark struct {
	Subject   string  `json:"subject" binding:"required"`
	FullMarks float64 `json:"full_marks" binding:"required,gt=0"`
	Obtained  float64 `json:"obtained" binding:"gte=0"`
}

type ProgressCardRequest struct {
	Student string        `json:"student" binding:"required"`
	Marks   []SubjectMark `json:"marks" binding:"required,min=1,dive"`
}

type SubjectResult struct {
	Subject    string  `json:"subject"`
	FullMarks  float64 `json:"full_marks"`
	Obtained   float64 `json:"obtained"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
	GradePoint float64 `json:"grade_point"`
}

// ProgressCardSummary — сводка успеваемости ученика по табелю.
type ProgressCardSummary struct {
	Student    string          `json:"student"`
	Subjects   []SubjectResult `json:"subjects"`
	Obtained   float64         `json:"total_obtained"`
	FullMarks  float64         `json:"total_full_marks"`
	Percentage float64         `json:"percentage"`
	GPA        float64         `json:"gpa"`
	Grade      string          `json:"grade"`
	Division   string          `json:"division"`
}

// gradeFor возвращает буквенную оценку и балл по проценту (шкала NEB).
func gradeFor(percentage float64) (string, float64) {
	switch {
	case percentage >= 90:
		return "A+", 4.0
	case percentage >= 80:
		return "A", 3.6
	case percentage >= 70:
		return "B+", 3.2
	case percentage >= 60:
		return "B", 2.8
	case percentage >= 50:
		return "C+", 2.4
	case percentage >= 40:
		return "C", 2.0
	case percentage >= 35:
		return "D", 1.6
	default:
		return "NG", 0.0
	}
}

// divisionFor возвращает дивизион по суммарному проценту.
func divisionFor(percentage float64) string {
	switch {
	case percentage >= 80:
		return "Distinction"
	case percentage >= 60:
		return "First"
	case percentage >= 45:
		return "Second"
	case percentage >= 35:
		return "Third"
	default:
		return "Fail"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildSummary считает табель: проценты и оценки по предметам, итоговый
// процент, средний балл (GPA) и дивизион.
func buildSummary(req ProgressCardRequest) ProgressCardSummary {
	summary := ProgressCardSummary{
		Student:  req.Student,
		Subjects: make([]SubjectResult, 0, len(req.Marks)),
	}

	var gradePoints float64
	for _, mark := range req.Marks {
		percentage := round2(mark.Obtained / mark.FullMarks * 100)
		grade, point := gradeFor(percentage)
		summary.Subjects = append(summary.Subjects, SubjectResult{
			Subject:    mark.Subject,
			FullMarks:  mark.FullMarks,
			Obtained:   mark.Obtained,
			Percentage: percentage,
			Grade:      grade,
			GradePoint: point,
		})
		summary.Obtained += mark.Obtained
		summary.FullMarks += mark.FullMarks
		gradePoints += point
	}

	summary.Percentage = round2(summary.Obtained / summary.FullMarks * 100)
	summary.GPA = round2(gradePoints / float64(len(req.Marks)))
	summary.Grade, _ = gradeFor(summary.Percentage)
	summary.Division = divisionFor(summary.Percentage)
	return summary
}

// GetProgressSummaryHandler обрабатывает расчёт табеля успеваемости
// @Summary		Сводка табеля успеваемости
// @Description	Считает проценты, оценки, GPA и дивизион по переданным отметкам. Данные не сохраняются.
// @Tags			progress-cards
// @Accept			json
// @Produce		json
// @Param			card	body		ProgressCardRequest	true	"Отметки ученика"
// @Success		200		{object}	ProgressCardSummary	"Сводка успеваемости"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Router			/progress-cards/summary [post]
func GetProgressSummaryHandler(c *gin.Context) {
	var req ProgressCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, buildSummary(req))
}

// ExportProgressCSVHandler обрабатывает выгрузку табеля в CSV
// @Summary		Экспорт табеля в CSV
// @Description	Возвращает табель успеваемости файлом CSV
// @Tags			progress-cards
// @Accept			json
// @Produce		text/csv
// @Param			card	body		ProgressCardRequest	true	"Отметки ученика"
// @Success		200		{string}	string	"CSV-файл"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (CSV_ERROR)"
// @Router			/progress-cards/export [post]
func ExportProgressCSVHandler(c *gin.Context) {
	var req ProgressCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	summary := buildSummary(req)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	records := [][]string{
		{"Subject", "Full Marks", "Obtained", "Percentage", "Grade", "Grade Point"},
	}
	for _, s := range summary.Subjects {
		records = append(records, []string{
			s.Subject,
			fmt.Sprintf("%.2f", s.FullMarks),
			fmt.Sprintf("%.2f", s.Obtained),
			fmt.Sprintf("%.2f", s.Percentage),
			s.Grade,
			fmt.Sprintf("%.1f", s.GradePoint),
		})
	}
	records = append(records,
		[]string{},
		[]string{"Total", fmt.Sprintf("%.2f", summary.FullMarks), fmt.Sprintf("%.2f", summary.Obtained),
			fmt.Sprintf("%.2f", summary.Percentage), summary.Grade, fmt.Sprintf("%.2f", summary.GPA)},
		[]string{"Division", summary.Division},
	)
	if err := writer.WriteAll(records); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "CSV_ERROR",
			Message: "Ошибка формирования CSV",
			Details: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("progress_card_%s.csv", summary.Student)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
