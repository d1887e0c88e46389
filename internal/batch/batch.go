// Package batch реализует пакетную обработку числовых токенов.
// Входная последовательность делится на чанки фиксированного размера,
// чанки выполняются пулом с ограниченным параллелизмом, а результаты
// собираются строго в исходном порядке.
package batch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunkSize - размер чанка по умолчанию
	DefaultChunkSize = 1000
	// DefaultWorkers - число одновременно обрабатываемых чанков по умолчанию
	DefaultWorkers = 4
)

// ErrPanic оборачивает панику, перехваченную внутри адаптера.
var ErrPanic = errors.New("conversion panicked")

// Conversion описывает преобразование одного токена.
type Conversion[T any] struct {
	// Parse разбирает токен в число; ошибка означает "Invalid number".
	Parse func(token string) (T, error)
	// Convert вызывает адаптер.
	Convert func(value T) (string, error)
	// Format выводит число в сообщении об ошибке адаптера.
	Format func(value T) string
}

// Processor хранит параметры разбиения на чанки.
type Processor struct {
	chunkSize int
	workers   int
	logger    *zap.Logger
}

// NewProcessor создает Processor. Неположительные значения заменяются значениями по умолчанию.
func NewProcessor(chunkSize, workers int, logger *zap.Logger) *Processor {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		chunkSize: chunkSize,
		workers:   workers,
		logger:    logger,
	}
}

// ChunkSize возвращает размер чанка.
func (p *Processor) ChunkSize() int {
	return p.chunkSize
}

// Chunks возвращает границы [start, end) каждого чанка для n элементов.
func (p *Processor) Chunks(n int) [][2]int {
	bounds := make([][2]int, 0, (n+p.chunkSize-1)/p.chunkSize)
	for start := 0; start < n; start += p.chunkSize {
		bounds = append(bounds, [2]int{start, min(start+p.chunkSize, n)})
	}
	return bounds
}

// Process преобразует tokens и возвращает результаты той же длины и в том же порядке.
//
// Ошибки разбора и ошибки адаптера не прерывают обработку и записываются
// в результат строкой. Ошибка возвращается только при отмене контекста
// или панике адаптера.
func Process[T any](ctx context.Context, p *Processor, tokens []string, c Conversion[T]) ([]string, error) {
	results := make([]string, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, b := range p.Chunks(len(tokens)) {
		if gctx.Err() != nil {
			break
		}
		start, end := b[0], b[1]
		g.Go(func() error {
			return processChunk(gctx, p.logger, tokens[start:end], results[start:end], c)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// processChunk пишет только в свой срез out, поэтому чанки не пересекаются.
func processChunk[T any](ctx context.Context, logger *zap.Logger, tokens, out []string, c Conversion[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	for i, token := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i] = convertOne(logger, token, c)
	}
	return nil
}

func convertOne[T any](logger *zap.Logger, token string, c Conversion[T]) string {
	value, err := c.Parse(token)
	if err != nil {
		msg := "Invalid number: " + token
		logger.Debug(msg)
		return msg
	}

	words, err := c.Convert(value)
	if err != nil {
		msg := fmt.Sprintf("Error converting %s to words: %s", c.Format(value), err.Error())
		logger.Debug("Conversion failed", zap.String("token", token), zap.Error(err))
		return msg
	}

	logger.Debug("Converted", zap.String("token", token), zap.String("words", words))
	return words
}
