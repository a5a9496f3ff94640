// Package conflict реализует проверку пересечений занятий по аудиториям.
// Детектор чистый и не хранит состояния: каждый вызов работает со снимком
// списка занятий, который передаёт вызывающая сторона. Проверка носит
// предупредительный характер и никогда не возвращает ошибку — любые проблемы
// с данными трактуются как «конфликт не обнаружен».
package conflict

import (
	"log"
	"strings"
	"time"
)

// Booking — снимок занятия, достаточный для проверки конфликтов.
// Все поля, кроме ID, опциональны: пустая строка означает отсутствие значения.
type Booking struct {
	ID        uint
	Room      string // Аудитория; без неё занятие не участвует в конфликтах
	Date      string // Дата разового занятия, "2006-01-02"
	DayOfWeek string // День недели еженедельного занятия, "sunday".."saturday"
	StartTime string // Начало, "15:04"
	EndTime   string // Окончание, "15:04"
	Schedule  string // Устаревшее текстовое расписание
}

const minutesPerDay = 24 * 60

// parseTimeOfDay разбирает время суток "15:04" (или "15:04:05") в минуты от
// полуночи. Неразбираемое значение не является ошибкой детектора: оно
// считается отсутствующим и переводит пару на сравнение текстовых расписаний.
func parseTimeOfDay(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	log.Printf("Не удалось разобрать время %q, занятие считается без структурированного времени", s)
	return 0, false
}

// sameOccurrence — шаг 1: пара занятий сравнивается по времени, только если
// совпали даты разовых занятий или дни недели еженедельных. Достаточно любого
// из двух совпадений.
func sameOccurrence(a, b Booking) bool {
	if a.Date != "" && b.Date != "" && a.Date == b.Date {
		return true
	}
	if a.DayOfWeek != "" && b.DayOfWeek != "" && a.DayOfWeek == b.DayOfWeek {
		return true
	}
	return false
}

// interval возвращает интервал занятия в минутах от полуночи.
// EndTime <= StartTime трактуется как переход через полночь: к концу
// добавляются сутки. Ремонт действует только на время сравнения, сами данные
// занятия не меняются.
func interval(b Booking) (start, end int, ok bool) {
	start, okStart := parseTimeOfDay(b.StartTime)
	end, okEnd := parseTimeOfDay(b.EndTime)
	if !okStart || !okEnd {
		return 0, 0, false
	}
	if end <= start {
		end += minutesPerDay
	}
	return start, end, true
}

// intervalsOverlap проверяет пересечение полуоткрытых интервалов [s1, e1) и
// [s2, e2) на суточном круге: интервал, перешедший через полночь, задевает и
// начало следующих суток. Соприкосновение концов конфликтом не считается.
func intervalsOverlap(s1, e1, s2, e2 int) bool {
	if s1 < e2 && s2 < e1 {
		return true
	}
	if s1+minutesPerDay < e2 && s2 < e1+minutesPerDay {
		return true
	}
	if s2+minutesPerDay < e1 && s1 < e2+minutesPerDay {
		return true
	}
	return false
}

// overlaps — шаги 2 и 3 для пары занятий в одной аудитории.
func overlaps(a, b Booking) bool {
	if !sameOccurrence(a, b) {
		return false
	}
	s1, e1, ok1 := interval(a)
	s2, e2, ok2 := interval(b)
	if ok1 && ok2 {
		return intervalsOverlap(s1, e1, s2, e2)
	}
	// Шаг 3: без полного структурированного времени с обеих сторон сравниваем
	// устаревший текст расписания. Конфликт только при точном совпадении
	// непустых значений.
	textA := strings.TrimSpace(a.Schedule)
	textB := strings.TrimSpace(b.Schedule)
	return textA != "" && textA == textB
}

// FindConflicts возвращает занятия из existing, пересекающиеся с candidate в
// той же аудитории. excludeID исключает редактируемое занятие из проверки
// (0 — не исключать ничего). Результат сохраняет исходный порядок existing,
// функция не меняет входные данные и безопасна для параллельных вызовов.
func FindConflicts(candidate Booking, existing []Booking, excludeID uint) []Booking {
	conflicts := make([]Booking, 0)
	if candidate.Room == "" {
		return conflicts
	}
	// Пустая форма: ни даты, ни дня недели, ни времени — проверять нечего.
	if candidate.Date == "" && candidate.DayOfWeek == "" &&
		candidate.StartTime == "" && candidate.EndTime == "" {
		return conflicts
	}
	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Room != candidate.Room {
			continue
		}
		if overlaps(candidate, b) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// HasConflict сообщает, пересекается ли занятие с остальными из списка.
// Используется для значка конфликта в списке занятий, поэтому кандидат
// исключает само себя по ID.
func HasConflict(candidate Booking, existing []Booking) bool {
	return len(FindConflicts(candidate, existing, candidate.ID)) > 0
}
