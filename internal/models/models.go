package models

import (
	"gorm.io/gorm"
)

// Room — аудитория (ресурс), за которую конкурируют занятия.
type Room struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"` // Номер или название аудитории, например "101A"
	Building string `json:"building"`                         // Корпус
	Capacity int    `json:"capacity"`                         // Вместимость
}

// Booking — занятие, занимающее аудиторию в интервале времени.
// Разовое занятие задаётся датой (Date), еженедельное — днём недели (DayOfWeek).
// Временные поля хранятся строками в том виде, в каком их прислал клиент:
// некорректное значение не мешает сохранению, оно лишь выводит пару занятий
// из структурированной проверки конфликтов.
type Booking struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"` // Название занятия
	Teacher   string `json:"teacher"`              // Преподаватель
	Room      string `gorm:"index" json:"room"`    // Аудитория; без неё занятие не участвует в конфликтах
	Date      string `gorm:"index" json:"date"`    // Дата разового занятия, "2006-01-02"
	DayOfWeek string `json:"day_of_week"`          // День недели еженедельного занятия, "sunday".."saturday"
	StartTime string `json:"start_time"`           // Начало занятия, "15:04"
	EndTime   string `json:"end_time"`             // Окончание занятия, "15:04"
	Schedule  string `json:"schedule"`             // Устаревшее текстовое расписание
}
