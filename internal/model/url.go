package model

import "time"

// Code короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который ведёт короткая ссылка
type URL string

func (u URL) String() string {
	return string(u)
}

// Link представляет сохранённую короткую ссылку
type Link struct {
	Code        Code
	OriginalURL URL
	UserID      string
	Title       string
	Description string
	VisitCount  int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLink создаёт активную ссылку без кода, код назначается при сохранении
func NewLink(originalURL URL, userID string) Link {
	now := time.Now().UTC()
	return Link{
		OriginalURL: originalURL,
		UserID:      userID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LinkStats агрегированная статистика переходов
type LinkStats struct {
	TotalLinks  int    `json:"total_links"`
	ActiveLinks int    `json:"active_links"`
	TotalVisits int64  `json:"total_visits"`
	TopLinks    []Link `json:"-"`
}

// TopLinksLimit количество ссылок в топе статистики
const TopLinksLimit = 5
