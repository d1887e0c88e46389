// Package service связывает адаптеры преобразования с пакетной обработкой.
package service

import (
	"context"
	"fmt"

	"github.com/InQaaaaGit/numtowords.git/internal/batch"
	"github.com/InQaaaaGit/numtowords.git/internal/config"
	"github.com/InQaaaaGit/numtowords.git/internal/converter"
	"go.uber.org/zap"
)

// ConversionService определяет операции преобразования списков токенов
type ConversionService interface {
	// ConvertWords преобразует целые числа в английские слова
	ConvertWords(ctx context.Context, tokens []string) ([]string, error)
	// ConvertCurrency преобразует суммы в словесную запись в валюте currency
	ConvertCurrency(ctx context.Context, tokens []string, currency string, showCents bool) ([]string, error)
	// ConvertText преобразует целые числа в слова на языке language
	ConvertText(ctx context.Context, tokens []string, language string) ([]string, error)
}

// ConversionServiceImpl реализует ConversionService
type ConversionServiceImpl struct {
	processor *batch.Processor
	logger    *zap.Logger
}

// NewConversionService создает сервис с параметрами чанков из конфигурации
func NewConversionService(cfg *config.Config, logger *zap.Logger) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		processor: batch.NewProcessor(cfg.BatchSize, cfg.BatchWorkers, logger),
		logger:    logger,
	}
}

// ConvertWords преобразует целые числа в английские слова
func (s *ConversionServiceImpl) ConvertWords(ctx context.Context, tokens []string) ([]string, error) {
	return run(ctx, s, "words", tokens, batch.Conversion[batch.Integer]{
		Parse: batch.ParseInt,
		Convert: func(v batch.Integer) (string, error) {
			return converter.Words(v.Value)
		},
		Format: batch.FormatInt,
	})
}

// ConvertCurrency преобразует суммы в словесную запись валюты
func (s *ConversionServiceImpl) ConvertCurrency(ctx context.Context, tokens []string, currency string, showCents bool) ([]string, error) {
	return run(ctx, s, "currency", tokens, batch.Conversion[float64]{
		Parse: batch.ParseFloat,
		Convert: func(v float64) (string, error) {
			return converter.Currency(v, currency, showCents)
		},
		Format: batch.FormatFloat,
	})
}

// ConvertText преобразует целые числа в слова выбранного языка
func (s *ConversionServiceImpl) ConvertText(ctx context.Context, tokens []string, language string) ([]string, error) {
	return run(ctx, s, "text", tokens, batch.Conversion[batch.Integer]{
		Parse: batch.ParseInt,
		Convert: func(v batch.Integer) (string, error) {
			return converter.Text(v.Value, language)
		},
		Format: batch.FormatInt,
	})
}

func run[T any](ctx context.Context, s *ConversionServiceImpl, kind string, tokens []string, c batch.Conversion[T]) ([]string, error) {
	words, err := batch.Process(ctx, s.processor, tokens, c)
	if err != nil {
		return nil, fmt.Errorf("%s conversion: %w", kind, err)
	}
	s.logger.Debug("Batch converted",
		zap.String("kind", kind),
		zap.Int("count", len(tokens)),
		zap.Int("chunks", len(s.processor.Chunks(len(tokens)))),
	)
	return words, nil
}
