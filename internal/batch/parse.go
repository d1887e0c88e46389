package batch

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoDigits возвращается, когда токен не начинается с числа.
var ErrNoDigits = errors.New("token does not start with a number")

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)
)

// Integer - целое, разобранное из префикса токена.
// Text хранит число в десятичной записи и используется в сообщениях
// об ошибках, даже если Value пришлось ограничить пределами int64.
type Integer struct {
	Value int64
	Text  string
}

// ParseInt разбирает ведущее целое токена: "12.5" -> 12, "1e3" -> 1.
// Хвост после цифр игнорируется. Значения за пределами int64
// ограничиваются math.MaxInt64/math.MinInt64, чтобы ошибку
// диапазона вернул адаптер.
func ParseInt(token string) (Integer, error) {
	prefix := intPrefix.FindString(strings.TrimSpace(token))
	if prefix == "" {
		return Integer{}, ErrNoDigits
	}

	v, err := strconv.ParseInt(prefix, 10, 64)
	if err == nil {
		return Integer{Value: v, Text: strconv.FormatInt(v, 10)}, nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return Integer{}, err
	}

	negative := prefix[0] == '-'
	digits := strings.TrimLeft(strings.TrimLeft(prefix, "+-"), "0")
	if negative {
		return Integer{Value: math.MinInt64, Text: "-" + digits}, nil
	}
	return Integer{Value: math.MaxInt64, Text: digits}, nil
}

// ParseFloat разбирает ведущее десятичное число токена: "10.5abc" -> 10.5.
// Переполнение дает бесконечность; ее отклоняет адаптер.
func ParseFloat(token string) (float64, error) {
	prefix := floatPrefix.FindString(strings.TrimSpace(token))
	if prefix == "" {
		return 0, ErrNoDigits
	}

	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if prefix[0] == '-' {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// FormatInt выводит целое для сообщений об ошибках.
func FormatInt(v Integer) string {
	return v.Text
}

// FormatFloat выводит число с плавающей точкой в кратчайшей форме.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
