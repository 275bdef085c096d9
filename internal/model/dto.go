package model

import "time"

// LinkEntry запись журнала файлового хранилища
type LinkEntry struct {
	UUID        string    `json:"uuid"`
	Op          string    `json:"op"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Операции журнала
const (
	OpCreate     = "create"
	OpVisit      = "visit"
	OpDeactivate = "deactivate"
)

// ShortenRequest тело запроса POST /api/shorten
type ShortenRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ShortenResponse ответ на создание короткой ссылки
type ShortenResponse struct {
	Result string `json:"result"`
}

// BatchShortenRequest представляет элемент запроса для батчевого сокращения URL
type BatchShortenRequest struct {
	CorrelationID string `json:"correlation_id"`
	OriginalURL   string `json:"original_url"`
}

// BatchShortenResponse представляет элемент ответа для батчевого сокращения URL
type BatchShortenResponse struct {
	CorrelationID string `json:"correlation_id"`
	ShortURL      string `json:"short_url"`
}

// LinkResponse описание ссылки для API
type LinkResponse struct {
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	VisitCount  int64     `json:"visit_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VisitResponse ответ эндпоинта /api/urls/{id}/visit
type VisitResponse struct {
	RedirectTo string `json:"redirect_to"`
}

// StatsResponse агрегированная статистика для API
type StatsResponse struct {
	TotalLinks  int            `json:"total_links"`
	ActiveLinks int            `json:"active_links"`
	TotalVisits int64          `json:"total_visits"`
	TopLinks    []LinkResponse `json:"top_links"`
}
