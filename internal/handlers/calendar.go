package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"school_mgmt/internal/storage"

	"github.com/gin-gonic/gin"
)

// Структуры для декодирования ответа API Nager.Date
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Global      bool   `json:"global"`
}

var calendarCtx = context.Background()

// GetHolidaysHandler обрабатывает запрос на получение школьного календаря праздников
// @Summary		Календарь праздников
// @Description	Получает список государственных праздников с внешнего API, кэширует результат в Redis
// @Tags			calendar
// @Accept			json
// @Produce		json
// @Param			year	query		string	true	"Год, например 2025"
// @Param			country	query		string	true	"Код страны ISO 3166-1, например NP"
// @Success		200		{array}		Holiday	"Список праздников"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации данных"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера"
// @Router			/calendar/holidays [get]
func GetHolidaysHandler(c *gin.Context) {
	year := c.Query("year")
	country := c.Query("country")
	if year == "" || country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Необходимо указать year и country"})
		return
	}

	cacheKey := "holidays_" + year + "_" + country
	redisClient := storage.RedisClient

	// Проверка кэша
	cached, err := redisClient.Get(calendarCtx, cacheKey).Result()
	if err == nil && cached != "" {
		var holidays []Holiday
		if err := json.Unmarshal([]byte(cached), &holidays); err == nil {
			c.JSON(http.StatusOK, holidays)
			return
		}
	}

	// Запрос к внешнему API
	apiURL := "https://date.nager.at/api/v3/PublicHolidays/" + year + "/" + country
	resp, err := http.Get(apiURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить данные календаря"})
		return
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения ответа внешнего API"})
		return
	}

	var holidays []Holiday
	if err := json.Unmarshal(body, &holidays); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка декодирования данных календаря"})
		return
	}

	// Кэширование результата на 6 часов
	redisClient.Set(calendarCtx, cacheKey, string(body), time.Hour*6)

	c.JSON(http.StatusOK, holidays)
}
