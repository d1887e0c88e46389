// Package handler содержит HTTP-обработчики маршрутов преобразования.
// Обработчики разбирают query-параметры, проверяют наличие чисел,
// подставляют значения по умолчанию и вызывают сервисный слой.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/InQaaaaGit/numtowords.git/internal/config"
	"github.com/InQaaaaGit/numtowords.git/internal/middleware"
	"github.com/InQaaaaGit/numtowords.git/internal/models"
	"github.com/InQaaaaGit/numtowords.git/internal/service"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"

	paramNumbers  = "numbers"
	paramLanguage = "language"
	paramCurrency = "currency"
	paramCent     = "cent"
)

// Handler обслуживает маршруты преобразования чисел
type Handler struct {
	service service.ConversionService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler создает Handler с сервисом преобразования и конфигурацией
func NewHandler(service service.ConversionService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// HandleConvert обрабатывает GET /convert: целые числа в английские слова
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	tokens, ok := h.requireNumbers(w, r, false)
	if !ok {
		return
	}

	words, err := h.service.ConvertWords(r.Context(), tokens)
	h.respond(w, r, words, err)
}

// HandleNumberToCurrency обрабатывает GET /numbertocurrency: суммы в словесную запись валюты.
// Числа передаются одной строкой через запятую.
func (h *Handler) HandleNumberToCurrency(w http.ResponseWriter, r *http.Request) {
	tokens, ok := h.requireNumbers(w, r, true)
	if !ok {
		return
	}

	query := r.URL.Query()
	currency := query.Get(paramCurrency)
	if currency == "" {
		currency = h.cfg.DefaultCurrency
	}

	showCents := true
	if raw := query.Get(paramCent); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.MessageInvalidCent})
			return
		}
		showCents = v
	}

	words, err := h.service.ConvertCurrency(r.Context(), tokens, currency, showCents)
	h.respond(w, r, words, err)
}

// HandleNumberToText обрабатывает GET /numbertotext: целые числа в слова выбранного языка
func (h *Handler) HandleNumberToText(w http.ResponseWriter, r *http.Request) {
	tokens, ok := h.requireNumbers(w, r, false)
	if !ok {
		return
	}

	language := r.URL.Query().Get(paramLanguage)
	if language == "" {
		language = h.cfg.DefaultLanguage
	}

	words, err := h.service.ConvertText(r.Context(), tokens, language)
	h.respond(w, r, words, err)
}

// numbersFromQuery собирает токены из numbers и numbers[].
// Если splitComma, каждое значение дополнительно делится по запятой.
func numbersFromQuery(r *http.Request, splitComma bool) []string {
	query := r.URL.Query()
	values := append(append([]string(nil), query[paramNumbers]...), query[paramNumbers+"[]"]...)

	if len(values) == 1 && values[0] == "" {
		return nil
	}
	if !splitComma {
		return values
	}

	tokens := make([]string, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, strings.Split(v, ",")...)
	}
	return tokens
}

// requireNumbers - общая для всех маршрутов проверка наличия чисел.
func (h *Handler) requireNumbers(w http.ResponseWriter, r *http.Request, splitComma bool) ([]string, bool) {
	tokens := numbersFromQuery(r, splitComma)
	if len(tokens) == 0 {
		h.logger.Debug("Request without numbers", zap.String("path", r.URL.Path))
		h.writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: models.MessageInvalidNumbers})
		return nil, false
	}
	return tokens, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, words []string, err error) {
	if err != nil {
		h.logger.Error("Error processing conversion",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: models.MessageError,
			Error:   err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, models.ConvertResponse{
		Message:    models.MessageSuccess,
		WordsArray: words,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}
