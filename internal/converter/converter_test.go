package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{name: "zero", in: 0, want: "zero"},
		{name: "single digit", in: 5, want: "five"},
		{name: "hundred", in: 100, want: "one hundred"},
		{name: "thousand", in: 1000, want: "one thousand"},
		{name: "negative", in: -5, want: "minus five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Words(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsUnsafeNumber(t *testing.T) {
	_, err := Words(MaxSafeInteger + 1)
	assert.ErrorIs(t, err, ErrUnsafeNumber)

	_, err = Words(-MaxSafeInteger - 1)
	assert.ErrorIs(t, err, ErrUnsafeNumber)

	_, err = Words(MaxSafeInteger)
	assert.NoError(t, err)
}

func TestText(t *testing.T) {
	tests := []struct {
		lang string
		in   int64
		want string
	}{
		{"en-us", 100, "one hundred"},
		{"en-US", 5, "five"},

		{"en-in", 100000, "one lakh"},
		{"en-in", 300000, "three lakh"},
		{"en-in", 100200, "one lakh two hundred"},
		{"EN-in", 10000000, "one crore"},
		{"en-in", 1_000_000_000_000, "one lakh crore"},
		{"en-in", 0, "zero"},

		{"de", 0, "null"},
		{"de", 1, "eins"},
		{"de", 16, "sechzehn"},
		{"de", 21, "einundzwanzig"},
		{"de", 100, "einhundert"},
		{"de", 101, "einhunderteins"},
		{"de", 999, "neunhundertneunundneunzig"},
		{"de", 1000, "eintausend"},
		{"de", 1001, "eintausendeins"},
		{"de", 1234, "eintausendzweihundertvierunddreißig"},
		{"de", 1_000_000, "eine Million"},
		{"de", 2_500_000, "zwei Millionen fünfhunderttausend"},
		{"de", 101_000_000, "einhunderteine Millionen"},
		{"de", 1_000_000_000, "eine Milliarde"},
		{"de", -5, "minus fünf"},
		{"de-AT", 12, "zwölf"},

		{"tr", 0, "sıfır"},
		{"tr", 11, "on bir"},
		{"tr", 100, "yüz"},
		{"tr", 200, "iki yüz"},
		{"tr", 1000, "bin"},
		{"tr", 1001, "bin bir"},
		{"tr", 1234, "bin iki yüz otuz dört"},
		{"tr", 2000, "iki bin"},
		{"tr", 1_000_000, "bir milyon"},
		{"tr", -3, "eksi üç"},

		{"id", 0, "nol"},
		{"id", 10, "sepuluh"},
		{"id", 11, "sebelas"},
		{"id", 12, "dua belas"},
		{"id", 25, "dua puluh lima"},
		{"id", 100, "seratus"},
		{"id", 111, "seratus sebelas"},
		{"id", 1000, "seribu"},
		{"id", 2000, "dua ribu"},
		{"id", 1_500_000, "satu juta lima ratus ribu"},
		{"id", -7, "minus tujuh"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.want, func(t *testing.T) {
			got, err := Text(tt.in, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextUnsupportedLanguage(t *testing.T) {
	for _, lang := range []string{"xx", "en", "fr", "not a tag"} {
		t.Run(lang, func(t *testing.T) {
			_, err := Text(100, lang)
			require.ErrorIs(t, err, ErrUnsupportedLanguage)
			assert.Contains(t, err.Error(), lang)
		})
	}
}

func TestTextOutOfRange(t *testing.T) {
	_, err := Text(1_000_000_000_000_000, "de")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Text(999_999_999_999_999, "tr")
	assert.NoError(t, err)

	_, err = Text(MaxSafeInteger+1, "id")
	assert.ErrorIs(t, err, ErrUnsafeNumber)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		code      string
		showCents bool
		want      string
	}{
		{name: "dollars and cents", amount: 10.5, code: "usd", showCents: true, want: "ten dollars and fifty cents"},
		{name: "upper case code", amount: 10.5, code: "USD", showCents: true, want: "ten dollars and fifty cents"},
		{name: "singular", amount: 1, code: "usd", showCents: true, want: "one dollar"},
		{name: "only cents", amount: 0.01, code: "usd", showCents: true, want: "one cent"},
		{name: "zero", amount: 0, code: "usd", showCents: true, want: "zero dollars"},
		{name: "cents hidden", amount: 10.5, code: "usd", showCents: false, want: "ten dollars"},
		{name: "negative euros", amount: -2, code: "eur", showCents: true, want: "minus two euros"},
		{name: "pence", amount: 2.5, code: "gbp", showCents: true, want: "two pounds and fifty pence"},
		{name: "no minor unit", amount: 5, code: "jpy", showCents: true, want: "five yen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Currency(tt.amount, tt.code, tt.showCents)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyErrors(t *testing.T) {
	_, err := Currency(1, "xyz", true)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	// валидный ISO-код без названия
	_, err = Currency(1, "chf", true)
	require.ErrorIs(t, err, ErrUnsupportedCurrency)
	assert.Contains(t, err.Error(), `"chf"`)

	_, err = Currency(1e20, "usd", true)
	assert.ErrorIs(t, err, ErrUnsafeNumber)
}
