package accountservice

import "errors"

var (
	// ErrArtistNotFound возвращается, когда мастер не найден
	ErrArtistNotFound = errors.New("accountservice: artist not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса аккаунтов
	ErrInvalidResponse = errors.New("accountservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accountservice: internal error")
)
