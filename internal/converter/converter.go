// Package converter содержит адаптеры преобразования чисел в слова.
// Каждый адаптер принимает число (и, при необходимости, код языка или валюты)
// и возвращает строку либо ошибку с описанием причины.
package converter

import "errors"

// MaxSafeInteger - наибольшее целое, которое адаптер слов принимает без потери точности.
const MaxSafeInteger = 1<<53 - 1

var (
	// ErrUnsafeNumber возвращается, когда число выходит за пределы MaxSafeInteger
	ErrUnsafeNumber = errors.New("input is not a safe number, it's either too large or too small")
	// ErrOutOfRange возвращается, когда число слишком велико для локализованного текста
	ErrOutOfRange = errors.New("number is out of range")
	// ErrUnsupportedLanguage возвращается для незарегистрированной локали
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrUnsupportedCurrency возвращается для неизвестного кода валюты
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
