package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"school_mgmt/internal/handlers"
	"school_mgmt/internal/models"
	"school_mgmt/internal/storage"
	"school_mgmt/internal/tasks"
	"school_mgmt/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func setupTestServer(t *testing.T) *httptest.Server {
	if os.Getenv("TEST_DB_HOST") == "" {
		fmt.Println("Подключение к .env")
		_ = godotenv.Load("../.env")
	}
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST не задан, интеграционный тест пропущен")
	}

	storage.ConnectTestingDatabase()

	if err := storage.DB.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}
	storage.DB.Exec("TRUNCATE TABLE rooms, bookings RESTART IDENTITY CASCADE;")

	go ws.HubInstance.Run()

	gin.SetMode(gin.TestMode)
	r := gin.Default()

	rooms := r.Group("/rooms")
	{
		rooms.POST("", handlers.CreateRoomHandler)
		rooms.GET("", handlers.GetRoomsHandler)
		rooms.DELETE("/:id", handlers.DeleteRoomHandler)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", handlers.CreateBookingHandler)
		bookings.GET("", handlers.GetBookingsHandler)
		bookings.POST("/check", handlers.CheckConflictsHandler)
		bookings.GET("/:id", handlers.GetBookingHandler)
		bookings.PUT("/:id", handlers.UpdateBookingHandler)
		bookings.DELETE("/:id", handlers.DeleteBookingHandler)
	}

	r.GET("/api/rooms/:room/ws", ws.RoomWebSocketHandler)

	return httptest.NewServer(r)
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	assert.NoError(t, err, "Ошибка сериализации запроса")
	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	assert.NoError(t, err, "Ошибка HTTP-запроса "+url)
	return res
}

func TestBookingFlow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// 1. Создаем аудиторию.
	roomRes := postJSON(t, ts.URL+"/rooms", handlers.RoomRequest{Name: "101A", Building: "Главный корпус", Capacity: 40})
	defer roomRes.Body.Close()
	assert.Equal(t, http.StatusCreated, roomRes.StatusCode, "Аудитория не создана")

	// 2. Создаем первое занятие — конфликтов быть не должно.
	res1 := postJSON(t, ts.URL+"/bookings", handlers.BookingRequest{
		Name:      "Математика",
		Teacher:   "Шарма",
		Room:      "101A",
		Date:      "2025-11-03",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	defer res1.Body.Close()
	assert.Equal(t, http.StatusCreated, res1.StatusCode, "Первое занятие не создано")

	var saved1 handlers.BookingSaveResponse
	assert.NoError(t, json.NewDecoder(res1.Body).Decode(&saved1))
	assert.Empty(t, saved1.Conflicts, "У первого занятия не должно быть конфликтов")
	log.Println("Первое занятие создано, ID:", saved1.Booking.ID)

	// 3. Проверяем кандидата с пересечением без сохранения.
	checkRes := postJSON(t, ts.URL+"/bookings/check", handlers.ConflictCheckRequest{
		Room:      "101A",
		Date:      "2025-11-03",
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	defer checkRes.Body.Close()
	assert.Equal(t, http.StatusOK, checkRes.StatusCode)

	var check handlers.ConflictCheckResponse
	assert.NoError(t, json.NewDecoder(checkRes.Body).Decode(&check))
	assert.True(t, check.HasConflict, "Пересекающийся кандидат должен давать конфликт")
	assert.Len(t, check.Conflicts, 1)
	assert.Equal(t, saved1.Booking.ID, check.Conflicts[0].ID)

	// 4. Подписываемся на события аудитории по WebSocket.
	wsURL := "ws" + ts.URL[4:] + "/api/rooms/101A/ws"
	wsConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err, "Ошибка подключения к WS")
	defer wsConn.Close()

	// 5. Сохраняем пересекающееся занятие: сохранение проходит, конфликт — предупреждение.
	res2 := postJSON(t, ts.URL+"/bookings", handlers.BookingRequest{
		Name:      "Физика",
		Teacher:   "Тапа",
		Room:      "101A",
		Date:      "2025-11-03",
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	defer res2.Body.Close()
	assert.Equal(t, http.StatusCreated, res2.StatusCode, "Конфликт не должен блокировать сохранение")

	var saved2 handlers.BookingSaveResponse
	assert.NoError(t, json.NewDecoder(res2.Body).Decode(&saved2))
	assert.Len(t, saved2.Conflicts, 1)
	assert.Equal(t, saved1.Booking.ID, saved2.Conflicts[0].ID)

	// 6. WS-событие о создании занятия.
	_, wsMessage, err := wsConn.ReadMessage()
	assert.NoError(t, err, "Ошибка чтения WS сообщения")
	var wsMsg map[string]interface{}
	assert.NoError(t, json.Unmarshal(wsMessage, &wsMsg))
	assert.Equal(t, "booking_created", wsMsg["event_type"], "Неверный тип WS сообщения")
	log.Println("Получено WS сообщение:", wsMsg)

	// 7. Аудит конфликтов рассылает предупреждение подписчикам аудитории.
	tasks.AuditConflicts()
	_, warnMessage, err := wsConn.ReadMessage()
	assert.NoError(t, err, "Ошибка чтения WS сообщения (conflict_warning)")
	var warnMsg map[string]interface{}
	assert.NoError(t, json.Unmarshal(warnMessage, &warnMsg))
	assert.Equal(t, "conflict_warning", warnMsg["event_type"], "Неверный тип WS сообщения после аудита")

	// 8. Список занятий аудитории.
	listRes, err := http.Get(ts.URL + "/bookings?room=101A")
	assert.NoError(t, err)
	defer listRes.Body.Close()
	var list handlers.BookingListResponse
	assert.NoError(t, json.NewDecoder(listRes.Body).Decode(&list))
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Results, 2)

	// 9. Переносим второе занятие на другую дату — конфликт исчезает.
	updateBody, _ := json.Marshal(handlers.BookingRequest{
		Name:      "Физика",
		Teacher:   "Тапа",
		Room:      "101A",
		Date:      "2025-11-04",
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	updateReq, _ := http.NewRequest("PUT", ts.URL+"/bookings/"+strconv.Itoa(int(saved2.Booking.ID)), bytes.NewReader(updateBody))
	updateReq.Header.Set("Content-Type", "application/json")
	updateRes, err := http.DefaultClient.Do(updateReq)
	assert.NoError(t, err)
	defer updateRes.Body.Close()
	assert.Equal(t, http.StatusOK, updateRes.StatusCode)

	var updated handlers.BookingSaveResponse
	assert.NoError(t, json.NewDecoder(updateRes.Body).Decode(&updated))
	assert.Empty(t, updated.Conflicts, "После переноса даты конфликтов быть не должно")
	assert.Equal(t, "2025-11-04", updated.Booking.Date)

	// 10. Удаляем первое занятие и проверяем список.
	deleteReq, _ := http.NewRequest("DELETE", ts.URL+"/bookings/"+strconv.Itoa(int(saved1.Booking.ID)), nil)
	deleteRes, err := http.DefaultClient.Do(deleteReq)
	assert.NoError(t, err)
	defer deleteRes.Body.Close()
	assert.Equal(t, http.StatusOK, deleteRes.StatusCode)

	listRes2, err := http.Get(ts.URL + "/bookings?room=101A")
	assert.NoError(t, err)
	defer listRes2.Body.Close()
	var list2 handlers.BookingListResponse
	assert.NoError(t, json.NewDecoder(listRes2.Body).Decode(&list2))
	assert.Equal(t, int64(1), list2.Total)
}
