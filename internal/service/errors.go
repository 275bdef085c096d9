package service

import "errors"

var (
	// ErrCapacityExhausted возвращается, когда не удалось подобрать свободный код
	// за отведённое количество попыток
	ErrCapacityExhausted = errors.New("code space exhausted: no free code found within retry budget")
	ErrInvalidGenerator  = errors.New("code length must be positive and alphabet non-empty")
)
