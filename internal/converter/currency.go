package converter

import (
	"fmt"
	"math"
	"strings"

	"github.com/divan/num2words"
	"golang.org/x/text/currency"
)

// DefaultCurrency используется, когда клиент не передал параметр currency.
const DefaultCurrency = "usd"

// unitName - название денежной единицы в единственном и множественном числе.
type unitName struct {
	one  string
	many string
}

func (u unitName) forAmount(n uint64) string {
	if n == 1 {
		return u.one
	}
	return u.many
}

type currencyName struct {
	major unitName
	minor unitName
}

var currencyNames = map[string]currencyName{
	"USD": {unitName{"dollar", "dollars"}, unitName{"cent", "cents"}},
	"AUD": {unitName{"dollar", "dollars"}, unitName{"cent", "cents"}},
	"CAD": {unitName{"dollar", "dollars"}, unitName{"cent", "cents"}},
	"EUR": {unitName{"euro", "euros"}, unitName{"cent", "cents"}},
	"GBP": {unitName{"pound", "pounds"}, unitName{"penny", "pence"}},
	"INR": {unitName{"rupee", "rupees"}, unitName{"paisa", "paise"}},
	"TRY": {unitName{"lira", "lira"}, unitName{"kuruş", "kuruş"}},
	"IDR": {unitName{"rupiah", "rupiah"}, unitName{"sen", "sen"}},
	"JPY": {unitName{"yen", "yen"}, unitName{"sen", "sen"}},
}

// Currency преобразует сумму в словесную запись в валюте code.
//
// Число знаков дробной части берется из стандартного округления ISO 4217
// (у JPY дробной части нет). Если showCents == false, дробная часть
// отбрасывается, а целая усекается.
func Currency(amount float64, code string, showCents bool) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCurrency, code)
	}
	name, ok := currencyNames[unit.String()]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCurrency, code)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > MaxSafeInteger {
		return "", ErrUnsafeNumber
	}

	negative := amount < 0
	abs := math.Abs(amount)

	digits, _ := currency.Standard.Rounding(unit)
	factor := uint64(math.Pow10(digits))

	var major, minor uint64
	if showCents {
		total := uint64(math.Round(abs * float64(factor)))
		major, minor = total/factor, total%factor
	} else {
		major = uint64(abs)
	}

	var parts []string
	if major > 0 || minor == 0 {
		parts = append(parts, num2words.Convert(int(major))+" "+name.major.forAmount(major))
	}
	if minor > 0 {
		parts = append(parts, num2words.Convert(int(minor))+" "+name.minor.forAmount(minor))
	}
	words := strings.Join(parts, " and ")
	if negative && (major > 0 || minor > 0) {
		words = "minus " + words
	}
	return words, nil
}
