package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается, когда сохранение записи не удалось
	ErrInternal = errors.New("usecase: booking persist failed")
)
