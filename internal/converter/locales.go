package converter

import (
	"strings"

	"github.com/divan/num2words"
)

// scale - разряд с названием в единственном и множественном числе.
type scale struct {
	value uint64
	one   string
	many  string
}

// englishIndian использует индийскую систему разрядов (lakh, crore).
func englishIndian(n uint64) string {
	if n == 0 {
		return num2words.Convert(0)
	}
	var parts []string
	if crore := n / 10_000_000; crore > 0 {
		parts = append(parts, englishIndian(crore)+" crore")
		n %= 10_000_000
	}
	if lakh := n / 100_000; lakh > 0 {
		parts = append(parts, num2words.Convert(int(lakh))+" lakh")
		n %= 100_000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, num2words.Convert(int(thousand))+" thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, num2words.Convert(int(n)))
	}
	return strings.Join(parts, " ")
}

var (
	germanOnes  = []string{"", "ein", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun"}
	germanTeens = []string{"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn"}
	germanTens  = []string{"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig"}

	germanScales = []scale{
		{1_000_000_000_000, "Billion", "Billionen"},
		{1_000_000_000, "Milliarde", "Milliarden"},
		{1_000_000, "Million", "Millionen"},
	}
)

func germanBelow100(n uint64) string {
	switch {
	case n < 10:
		return germanOnes[n]
	case n < 20:
		return germanTeens[n-10]
	case n%10 == 0:
		return germanTens[n/10]
	default:
		return germanOnes[n%10] + "und" + germanTens[n/10]
	}
}

func germanBelow1000(n uint64) string {
	var s string
	if h := n / 100; h > 0 {
		s = germanOnes[h] + "hundert"
	}
	if r := n % 100; r > 0 {
		s += germanBelow100(r)
	}
	return s
}

// german пишет числа до миллиона одним словом, разряды от миллиона - отдельно.
func german(n uint64) string {
	if n == 0 {
		return "null"
	}
	var parts []string
	for _, sc := range germanScales {
		g := n / sc.value
		if g == 0 {
			continue
		}
		n %= sc.value
		if g == 1 {
			parts = append(parts, "eine "+sc.one)
			continue
		}
		num := germanBelow1000(g)
		if g%100 == 1 {
			num += "e"
		}
		parts = append(parts, num+" "+sc.many)
	}
	if n > 0 {
		var s string
		if th := n / 1000; th > 0 {
			s = germanBelow1000(th) + "tausend"
		}
		if r := n % 1000; r > 0 {
			s += germanBelow1000(r)
			if r%100 == 1 {
				s += "s"
			}
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

var (
	turkishOnes = []string{"", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"}
	turkishTens = []string{"", "on", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"}

	turkishScales = []scale{
		{1_000_000_000_000, "trilyon", "trilyon"},
		{1_000_000_000, "milyar", "milyar"},
		{1_000_000, "milyon", "milyon"},
		{1000, "bin", "bin"},
	}
)

func turkishBelow1000(n uint64) []string {
	var words []string
	if h := n / 100; h == 1 {
		words = append(words, "yüz")
	} else if h > 1 {
		words = append(words, turkishOnes[h], "yüz")
	}
	if t := n / 10 % 10; t > 0 {
		words = append(words, turkishTens[t])
	}
	if u := n % 10; u > 0 {
		words = append(words, turkishOnes[u])
	}
	return words
}

// turkish не ставит "bir" перед "yüz" и "bin".
func turkish(n uint64) string {
	if n == 0 {
		return "sıfır"
	}
	var words []string
	for _, sc := range turkishScales {
		g := n / sc.value
		if g == 0 {
			continue
		}
		n %= sc.value
		if g == 1 && sc.value == 1000 {
			words = append(words, sc.one)
			continue
		}
		words = append(words, turkishBelow1000(g)...)
		words = append(words, sc.one)
	}
	words = append(words, turkishBelow1000(n)...)
	return strings.Join(words, " ")
}

var (
	indonesianOnes = []string{"", "satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan", "sembilan"}

	indonesianScales = []scale{
		{1_000_000_000_000, "triliun", "triliun"},
		{1_000_000_000, "miliar", "miliar"},
		{1_000_000, "juta", "juta"},
		{1000, "ribu", "ribu"},
	}
)

func indonesianBelow1000(n uint64) []string {
	var words []string
	if h := n / 100; h == 1 {
		words = append(words, "seratus")
	} else if h > 1 {
		words = append(words, indonesianOnes[h], "ratus")
	}
	r := n % 100
	switch {
	case r == 0:
	case r == 10:
		words = append(words, "sepuluh")
	case r == 11:
		words = append(words, "sebelas")
	case r < 10:
		words = append(words, indonesianOnes[r])
	case r < 20:
		words = append(words, indonesianOnes[r%10], "belas")
	default:
		words = append(words, indonesianOnes[r/10], "puluh")
		if u := r % 10; u > 0 {
			words = append(words, indonesianOnes[u])
		}
	}
	return words
}

// indonesian использует приставку "se-" для единицы: seratus, seribu.
func indonesian(n uint64) string {
	if n == 0 {
		return "nol"
	}
	var words []string
	for _, sc := range indonesianScales {
		g := n / sc.value
		if g == 0 {
			continue
		}
		n %= sc.value
		if g == 1 && sc.value == 1000 {
			words = append(words, "seribu")
			continue
		}
		words = append(words, indonesianBelow1000(g)...)
		words = append(words, sc.one)
	}
	words = append(words, indonesianBelow1000(n)...)
	return strings.Join(words, " ")
}
