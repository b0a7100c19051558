package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается, когда чтение доступности из хранилища не удалось
	ErrInternal = errors.New("usecase: availability query failed")
)
