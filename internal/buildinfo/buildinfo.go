// Package buildinfo предоставляет информацию о сборке приложения.
// Значения подставляются при сборке через -ldflags и выводятся в лог при старте.
package buildinfo

import (
	"fmt"

	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// NewInfo создает информацию о сборке; пустые значения заменяются на "N/A"
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// Fields возвращает информацию о сборке в виде полей zap
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", info.Version),
		zap.String("build_date", info.Date),
		zap.String("commit", info.Commit),
	}
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
