package handlers

import (
	"log"
	"net/http"
	"strconv"

	"school_mgmt/internal/conflict"
	"school_mgmt/internal/models"
	"school_mgmt/internal/response"
	"school_mgmt/internal/storage"
	"school_mgmt/internal/ws"

	"github.com/gin-gonic/gin"
)

type BookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Schedule  string `json:"schedule"`
}

// BookingSaveResponse содержит сохранённое занятие и найденные конфликты.
// Конфликты — только предупреждение, сохранение они не блокируют.
type BookingSaveResponse struct {
	Booking   models.Booking   `json:"booking"`
	Conflicts []models.Booking `json:"conflicts"`
}

// BookingListResponse содержит страницу списка занятий.
type BookingListResponse struct {
	Results []models.Booking `json:"results"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Total   int64            `json:"total"`
}

type ConflictCheckRequest struct {
	Room      string `json:"room"`
	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Schedule  string `json:"schedule"`
	ExcludeID uint   `json:"exclude_id"` // ID редактируемого занятия, 0 при создании
}

type ConflictCheckResponse struct {
	HasConflict bool             `json:"has_conflict"`
	Conflicts   []models.Booking `json:"conflicts"`
}

// toConflictBooking собирает снимок занятия для детектора.
func toConflictBooking(b models.Booking) conflict.Booking {
	return conflict.Booking{
		ID:        b.ID,
		Room:      b.Room,
		Date:      b.Date,
		DayOfWeek: b.DayOfWeek,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Schedule:  b.Schedule,
	}
}

// conflictsForCandidate загружает занятия той же аудитории и прогоняет детектор.
// Ошибка загрузки не блокирует вызывающий обработчик: проверка конфликтов —
// только предупреждение, поэтому при сбое возвращается пустой список.
func conflictsForCandidate(candidate conflict.Booking, excludeID uint) []models.Booking {
	result := make([]models.Booking, 0)
	if candidate.Room == "" {
		return result
	}

	var sameRoom []models.Booking
	if err := storage.DB.Where("room = ?", candidate.Room).Order("id ASC").Find(&sameRoom).Error; err != nil {
		log.Println("Ошибка загрузки занятий для проверки конфликтов:", err)
		return result
	}

	existing := make([]conflict.Booking, 0, len(sameRoom))
	for _, b := range sameRoom {
		existing = append(existing, toConflictBooking(b))
	}

	byID := make(map[uint]models.Booking, len(sameRoom))
	for _, b := range sameRoom {
		byID[b.ID] = b
	}
	for _, c := range conflict.FindConflicts(candidate, existing, excludeID) {
		result = append(result, byID[c.ID])
	}
	return result
}

// CreateBookingHandler обрабатывает создание занятия
// @Summary		Создание занятия
// @Description	Создаёт занятие и возвращает список конфликтующих занятий той же аудитории. Конфликты не блокируют сохранение.
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			booking	body		BookingRequest	true	"Данные занятия"
// @Success		201		{object}	BookingSaveResponse	"Занятие создано"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/bookings [post]
func CreateBookingHandler(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	booking := models.Booking{
		Name:      req.Name,
		Teacher:   req.Teacher,
		Room:      req.Room,
		Date:      req.Date,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Schedule:  req.Schedule,
	}

	conflicts := conflictsForCandidate(toConflictBooking(booking), 0)

	if err := storage.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании занятия",
			Details: err.Error(),
		})
		return
	}

	if booking.Room != "" {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: "booking_created",
			Room:      booking.Room,
			Data: map[string]interface{}{
				"booking_id": booking.ID,
				"name":       booking.Name,
				"conflicts":  len(conflicts),
			},
		})
	}

	c.JSON(http.StatusCreated, BookingSaveResponse{Booking: booking, Conflicts: conflicts})
}

// GetBookingsHandler обрабатывает получение списка занятий
// @Summary		Список занятий
// @Description	Возвращает страницу списка занятий, опционально отфильтрованную по аудитории
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			room	query		string	false	"Аудитория"
// @Param			limit	query		int		false	"Размер страницы (по умолчанию 50)"
// @Param			offset	query		int		false	"Смещение"
// @Success		200		{object}	BookingListResponse	"Страница списка занятий"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/bookings [get]
func GetBookingsHandler(c *gin.Context) {
	room := c.Query("room")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	countQuery := storage.DB.Model(&models.Booking{})
	listQuery := storage.DB.Model(&models.Booking{})
	if room != "" {
		countQuery = countQuery.Where("room = ?", room)
		listQuery = listQuery.Where("room = ?", room)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка подсчёта занятий",
			Details: err.Error(),
		})
		return
	}

	var bookings []models.Booking
	if err := listQuery.Order("id ASC").Limit(limit).Offset(offset).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки занятий",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, BookingListResponse{
		Results: bookings,
		Limit:   limit,
		Offset:  offset,
		Total:   total,
	})
}

// GetBookingHandler обрабатывает получение одного занятия
// @Summary		Получение занятия
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID занятия"
// @Success		200	{object}	models.Booking	"Занятие"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BOOKING_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Занятие не найдено (BOOKING_NOT_FOUND)"
// @Router			/bookings/{id} [get]
func GetBookingHandler(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BOOKING_ID",
			Message: "Неверный идентификатор занятия",
		})
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BOOKING_NOT_FOUND",
			Message: "Занятие не найдено",
		})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingHandler обрабатывает изменение занятия
// @Summary		Изменение занятия
// @Description	Обновляет занятие и повторно проверяет конфликты, исключая само занятие. Конфликты не блокируют сохранение.
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			id		path		string			true	"ID занятия"
// @Param			booking	body		BookingRequest	true	"Новые данные занятия"
// @Success		200		{object}	BookingSaveResponse	"Занятие обновлено"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (INVALID_BOOKING_ID, VALIDATION_ERROR)"
// @Failure		404		{object}	response.ErrorResponse	"Занятие не найдено (BOOKING_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/bookings/{id} [put]
func UpdateBookingHandler(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BOOKING_ID",
			Message: "Неверный идентификатор занятия",
		})
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BOOKING_NOT_FOUND",
			Message: "Занятие не найдено",
		})
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	booking.Name = req.Name
	booking.Teacher = req.Teacher
	booking.Room = req.Room
	booking.Date = req.Date
	booking.DayOfWeek = req.DayOfWeek
	booking.StartTime = req.StartTime
	booking.EndTime = req.EndTime
	booking.Schedule = req.Schedule

	// Редактируемое занятие исключается из проверки по собственному ID.
	conflicts := conflictsForCandidate(toConflictBooking(booking), booking.ID)

	if err := storage.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при сохранении занятия",
			Details: err.Error(),
		})
		return
	}

	if booking.Room != "" {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: "booking_updated",
			Room:      booking.Room,
			Data: map[string]interface{}{
				"booking_id": booking.ID,
				"name":       booking.Name,
				"conflicts":  len(conflicts),
			},
		})
	}

	c.JSON(http.StatusOK, BookingSaveResponse{Booking: booking, Conflicts: conflicts})
}

// DeleteBookingHandler обрабатывает удаление занятия
// @Summary		Удаление занятия
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID занятия"
// @Success		200	{object}	response.SuccessResponse	"Занятие удалено"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BOOKING_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Занятие не найдено (BOOKING_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/bookings/{id} [delete]
func DeleteBookingHandler(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BOOKING_ID",
			Message: "Неверный идентификатор занятия",
		})
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BOOKING_NOT_FOUND",
			Message: "Занятие не найдено",
		})
		return
	}

	if err := storage.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении занятия",
			Details: err.Error(),
		})
		return
	}

	if booking.Room != "" {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: "booking_deleted",
			Room:      booking.Room,
			Data: map[string]interface{}{
				"booking_id": booking.ID,
				"name":       booking.Name,
			},
		})
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Занятие успешно удалено"})
}

// CheckConflictsHandler обрабатывает проверку конфликтов для несохранённого занятия
// @Summary		Проверка конфликтов
// @Description	Проверяет кандидата на пересечения с занятиями той же аудитории без сохранения. Используется формой при вводе.
// @Tags			bookings
// @Accept			json
// @Produce		json
// @Param			candidate	body		ConflictCheckRequest	true	"Проверяемое занятие"
// @Success		200			{object}	ConflictCheckResponse	"Результат проверки"
// @Failure		400			{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Router			/bookings/check [post]
func CheckConflictsHandler(c *gin.Context) {
	var req ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	candidate := conflict.Booking{
		Room:      req.Room,
		Date:      req.Date,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Schedule:  req.Schedule,
	}
	conflicts := conflictsForCandidate(candidate, req.ExcludeID)

	c.JSON(http.StatusOK, ConflictCheckResponse{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	})
}
