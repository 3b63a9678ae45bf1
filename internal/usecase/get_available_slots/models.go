package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	EventTypeID int64     // ID типа встречи
	Date        time.Time // Дата (время игнорируется)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	EventTypeID     int64     // ID типа встречи
	DurationMinutes int       // Длительность встречи
	Slots           []Slot    // Слоты в порядке возрастания времени
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала (например, "10:00")
	StartsAt  time.Time        // Время начала в часовом поясе сервиса
	EndsAt    time.Time        // Время окончания
	Available bool             // false, если слот пересекается с бронированием
}
