package ledgerservice

import "errors"

var (
	// ErrInvalidResponse возвращается при некорректном ответе сервиса расчетов
	ErrInvalidResponse = errors.New("ledgerservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ledgerservice: internal error")
)
