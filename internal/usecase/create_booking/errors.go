package create_booking

import "errors"

var (
	// ErrArtistNotFound возвращается, когда мастер не найден
	ErrArtistNotFound = errors.New("create_booking: artist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrNotAcceptingBookings возвращается, когда мастер приостановил прием записей
	ErrNotAcceptingBookings = errors.New("create_booking: artist is not accepting bookings")

	// ErrDayOff возвращается, когда запрошенный день является выходным мастера
	ErrDayOff = errors.New("create_booking: requested day is a day off")

	// ErrOutsideWorkingHours возвращается, когда время начала вне рабочего окна
	ErrOutsideWorkingHours = errors.New("create_booking: start time is outside working hours")

	// ErrExceedsWorkingHours возвращается, когда услуга не успевает закончиться до конца окна
	ErrExceedsWorkingHours = errors.New("create_booking: appointment would exceed working hours")

	// ErrMisalignedInterval возвращается, когда время начала не на границе сессионного интервала
	ErrMisalignedInterval = errors.New("create_booking: start time is not aligned to the session interval")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrPastStartTime возвращается, когда запрошенное время уже прошло
	ErrPastStartTime = errors.New("create_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
