package accountservice

// Artist профиль мастера из сервиса аккаунтов
type Artist struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
