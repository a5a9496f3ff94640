package tasks

import (
	"log"
	"time"

	"school_mgmt/internal/conflict"
	"school_mgmt/internal/models"
	"school_mgmt/internal/storage"
	"school_mgmt/internal/ws"

	"github.com/robfig/cron/v3"
)

// AuditConflicts проходит по занятиям каждой аудитории и рассылает
// предупреждения о пересечениях подписчикам. Проверка только предупреждает,
// занятия не изменяются и не удаляются.
func AuditConflicts() {
	var bookings []models.Booking
	if err := storage.DB.Order("id ASC").Find(&bookings).Error; err != nil {
		log.Println("Ошибка загрузки занятий для аудита конфликтов:", err)
		return
	}

	byRoom := make(map[string][]conflict.Booking)
	for _, b := range bookings {
		if b.Room == "" {
			continue
		}
		byRoom[b.Room] = append(byRoom[b.Room], conflict.Booking{
			ID:        b.ID,
			Room:      b.Room,
			Date:      b.Date,
			DayOfWeek: b.DayOfWeek,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Schedule:  b.Schedule,
		})
	}

	for room, list := range byRoom {
		flagged := 0
		for _, b := range list {
			if conflict.HasConflict(b, list) {
				flagged++
			}
		}
		if flagged == 0 {
			continue
		}
		log.Printf("Аудитория %s: занятий с конфликтами — %d\n", room, flagged)
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: "conflict_warning",
			Room:      room,
			Data: map[string]interface{}{
				"bookings_in_conflict": flagged,
			},
		})
	}
}

// CleanOldBookings удаляет разовые занятия, дата которых прошла больше суток
// назад. Еженедельные занятия (с днём недели) не трогаются.
func CleanOldBookings() {
	threshold := time.Now().Add(-24 * time.Hour).Format("2006-01-02")
	if err := storage.DB.Where("date <> '' AND date < ? AND day_of_week = ''", threshold).Delete(&models.Booking{}).Error; err != nil {
		log.Println("Ошибка при удалении устаревших занятий:", err)
	} else {
		log.Println("Устаревшие занятия успешно удалены.")
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Аудит конфликтов каждые 5 минут.
	_, err := c.AddFunc("0 */5 * * * *", AuditConflicts)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи AuditConflicts:", err)
	}

	// Очистка устаревших занятий каждый день в 03:00.
	_, err = c.AddFunc("0 0 3 * * *", CleanOldBookings)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanOldBookings:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
