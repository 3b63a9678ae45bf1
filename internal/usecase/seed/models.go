package seed

// Request начальные данные: администратор и его типы встреч
type Request struct {
	Username   string
	Email      string
	DayStart   string // HH:MM
	DayEnd     string // HH:MM
	EventTypes []EventTypeSeed
}

// EventTypeSeed тип встречи для начального заполнения
type EventTypeSeed struct {
	Title           string
	Slug            string
	DurationMinutes int
	Description     string
}

// Response результат заполнения
type Response struct {
	UserID            int64
	UserCreated       bool
	WindowsCreated    int
	EventTypesCreated int
}

// DefaultRequest данные по умолчанию: kavya / admin@cal.com, 15min и 30min
func DefaultRequest() *Request {
	return &Request{
		Username: "kavya",
		Email:    "admin@cal.com",
		DayStart: "09:00",
		DayEnd:   "17:00",
		EventTypes: []EventTypeSeed{
			{Title: "15 Min Meeting", Slug: "15min", DurationMinutes: 15, Description: "A quick sync."},
			{Title: "30 Min Meeting", Slug: "30min", DurationMinutes: 30, Description: "Standard discussion."},
		},
	}
}
