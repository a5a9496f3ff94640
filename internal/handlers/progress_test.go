package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func progressRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/progress-cards/summary", GetProgressSummaryHandler)
	r.POST("/progress-cards/export", ExportProgressCSVHandler)
	return r
}

func TestGradeScale(t *testing.T) {
	cases := []struct {
		percentage float64
		grade      string
		point      float64
	}{
		{100, "A+", 4.0},
		{90, "A+", 4.0},
		{89.99, "A", 3.6},
		{70, "B+", 3.2},
		{60, "B", 2.8},
		{50, "C+", 2.4},
		{40, "C", 2.0},
		{35, "D", 1.6},
		{34.99, "NG", 0.0},
		{0, "NG", 0.0},
	}
	for _, tc := range cases {
		grade, point := gradeFor(tc.percentage)
		assert.Equal(t, tc.grade, grade, "процент: %v", tc.percentage)
		assert.Equal(t, tc.point, point, "процент: %v", tc.percentage)
	}
}

func TestDivisionScale(t *testing.T) {
	assert.Equal(t, "Distinction", divisionFor(85))
	assert.Equal(t, "First", divisionFor(60))
	assert.Equal(t, "Second", divisionFor(45))
	assert.Equal(t, "Third", divisionFor(35))
	assert.Equal(t, "Fail", divisionFor(20))
}

func TestBuildSummary(t *testing.T) {
	req := ProgressCardRequest{
		Student: "Рам Шарма",
		Marks: []SubjectMark{
			{Subject: "Математика", FullMarks: 100, Obtained: 95},
			{Subject: "Наука", FullMarks: 100, Obtained: 72},
			{Subject: "Непальский", FullMarks: 50, Obtained: 20},
		},
	}

	summary := buildSummary(req)

	assert.Len(t, summary.Subjects, 3)
	assert.Equal(t, "A+", summary.Subjects[0].Grade)
	assert.Equal(t, "B+", summary.Subjects[1].Grade)
	assert.Equal(t, "C", summary.Subjects[2].Grade)
	assert.Equal(t, 187.0, summary.Obtained)
	assert.Equal(t, 250.0, summary.FullMarks)
	assert.Equal(t, 74.8, summary.Percentage)
	assert.Equal(t, 3.07, summary.GPA) // (4.0+3.2+2.0)/3
	assert.Equal(t, "B+", summary.Grade)
	assert.Equal(t, "First", summary.Division)
}

func TestProgressSummaryHandler(t *testing.T) {
	r := progressRouter()

	body, _ := json.Marshal(ProgressCardRequest{
		Student: "Сита Тапа",
		Marks: []SubjectMark{
			{Subject: "Математика", FullMarks: 100, Obtained: 91},
		},
	})
	req := httptest.NewRequest("POST", "/progress-cards/summary", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary ProgressCardSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 91.0, summary.Percentage)
	assert.Equal(t, "A+", summary.Grade)
	assert.Equal(t, 4.0, summary.GPA)
}

func TestProgressSummaryValidation(t *testing.T) {
	r := progressRouter()

	// Без имени ученика и отметок запрос не проходит валидацию.
	req := httptest.NewRequest("POST", "/progress-cards/summary", strings.NewReader(`{"marks":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestProgressCSVExport(t *testing.T) {
	r := progressRouter()

	body, _ := json.Marshal(ProgressCardRequest{
		Student: "Рам Шарма",
		Marks: []SubjectMark{
			{Subject: "Математика", FullMarks: 100, Obtained: 95},
			{Subject: "Наука", FullMarks: 100, Obtained: 72},
		},
	})
	req := httptest.NewRequest("POST", "/progress-cards/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "progress_card_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, "Subject,Full Marks,Obtained,Percentage,Grade,Grade Point", strings.TrimSpace(lines[0]))
	assert.Contains(t, w.Body.String(), "Математика")
	assert.Contains(t, w.Body.String(), "Division,First")
}
