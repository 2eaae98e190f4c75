package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в transport/web/v1)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrValidation       = errors.New("validation")         // 400 (нет обязательного поля)
	ErrNotFound         = errors.New("not_found")          // 404
	ErrConflict         = errors.New("conflict")           // 409 (дубликат первичного ключа)
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrStore            = errors.New("store_failed")       // 500 (стор недоступен/упал посреди операции)
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Коды для error.code в конверте ответа
const (
	ErrCodeBadParams        = 1000
	ErrCodeValidation       = 1002
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeConflict         = 1009
	ErrCodeStore            = 1500
	ErrCodeUnexpected       = 1999
)
