package handlers

import (
	"net/http"
	"strconv"

	"school_mgmt/internal/models"
	"school_mgmt/internal/response"
	"school_mgmt/internal/storage"

	"github.com/gin-gonic/gin"
)

type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Building string `json:"building"`
	Capacity int    `json:"capacity"`
}

// CreateRoomHandler обрабатывает создание аудитории
// @Summary		Создание аудитории
// @Tags			rooms
// @Accept			json
// @Produce		json
// @Param			room	body		RoomRequest	true	"Данные аудитории"
// @Success		201		{object}	models.Room	"Аудитория создана"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или аудитория уже существует (ROOM_EXISTS)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/rooms [post]
func CreateRoomHandler(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var existing models.Room
	if err := storage.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "ROOM_EXISTS",
			Message: "Аудитория с таким названием уже существует",
		})
		return
	}

	room := models.Room{
		Name:     req.Name,
		Building: req.Building,
		Capacity: req.Capacity,
	}
	if err := storage.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании аудитории",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoomsHandler обрабатывает получение списка аудиторий
// @Summary		Список аудиторий
// @Tags			rooms
// @Accept			json
// @Produce		json
// @Success		200	{array}		models.Room	"Список аудиторий"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/rooms [get]
func GetRoomsHandler(c *gin.Context) {
	var rooms []models.Room
	if err := storage.DB.Order("name ASC").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки аудиторий",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// DeleteRoomHandler обрабатывает удаление аудитории
// @Summary		Удаление аудитории
// @Tags			rooms
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID аудитории"
// @Success		200	{object}	response.SuccessResponse	"Аудитория удалена"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_ROOM_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Аудитория не найдена (ROOM_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/rooms/{id} [delete]
func DeleteRoomHandler(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_ROOM_ID",
			Message: "Неверный идентификатор аудитории",
		})
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, roomID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "ROOM_NOT_FOUND",
			Message: "Аудитория не найдена",
		})
		return
	}

	if err := storage.DB.Delete(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении аудитории",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Аудитория успешно удалена"})
}
