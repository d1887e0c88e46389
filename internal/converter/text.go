package converter

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage используется, когда клиент не передал параметр language.
const DefaultLanguage = "en-us"

// maxText - верхняя граница модуля числа для локализованного текста.
const maxText = 999_999_999_999_999

// locale описывает зарегистрированный словарь.
type locale struct {
	spell func(n uint64) string
	minus string
}

var locales = map[string]locale{
	"en-us": {spell: englishUS, minus: "minus"},
	"en-in": {spell: englishIndian, minus: "minus"},
	"de":    {spell: german, minus: "minus"},
	"tr":    {spell: turkish, minus: "eksi"},
	"id":    {spell: indonesian, minus: "minus"},
}

// lookupLocale находит словарь по тегу языка.
// Сначала ищется точное совпадение ("en-IN" -> en-in), затем
// локаль без региона ("de-AT" -> de). "en" без региона не зарегистрирован.
func lookupLocale(tag string) (locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return locale{}, fmt.Errorf("%w %q", ErrUnsupportedLanguage, tag)
	}
	if loc, ok := locales[strings.ToLower(t.String())]; ok {
		return loc, nil
	}
	base, _ := t.Base()
	if loc, ok := locales[strings.ToLower(base.String())]; ok {
		return loc, nil
	}
	return locale{}, fmt.Errorf("%w %q", ErrUnsupportedLanguage, tag)
}

// Text преобразует целое число в количественные слова на языке lang.
func Text(n int64, lang string) (string, error) {
	loc, err := lookupLocale(lang)
	if err != nil {
		return "", err
	}
	if n > MaxSafeInteger || n < -MaxSafeInteger {
		return "", ErrUnsafeNumber
	}
	if n > maxText || n < -maxText {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n < 0 {
		return loc.minus + " " + loc.spell(uint64(-n)), nil
	}
	return loc.spell(uint64(n)), nil
}
