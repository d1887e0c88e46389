package converter

import (
	"github.com/divan/num2words"
)

// Words преобразует целое число в английские количественные слова.
func Words(n int64) (string, error) {
	if n > MaxSafeInteger || n < -MaxSafeInteger {
		return "", ErrUnsafeNumber
	}
	if n < 0 {
		return "minus " + num2words.Convert(int(-n)), nil
	}
	return num2words.Convert(int(n)), nil
}

// englishUS - словарь en-us для маршрута локализованного текста.
func englishUS(n uint64) string {
	return num2words.Convert(int(n))
}
