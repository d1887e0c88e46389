// Package models содержит структуры JSON-ответов сервиса.
package models

const (
	// MessageSuccess - значение поля message в успешном ответе
	MessageSuccess = "Success"
	// MessageError - значение поля message при внутренней ошибке
	MessageError = "Error"
	// MessageInvalidNumbers - ответ на запрос без параметра numbers
	MessageInvalidNumbers = "Invalid numbers provided"
	// MessageInvalidCent - ответ на запрос с некорректным параметром cent
	MessageInvalidCent = "Invalid cent flag provided"
	// MessageSomethingWrong - ответ обработчика паник
	MessageSomethingWrong = "Something went wrong!"
)

// ConvertResponse представляет успешный ответ всех маршрутов преобразования
type ConvertResponse struct {
	Message    string   `json:"message"`
	WordsArray []string `json:"wordsArray"`
}

// MessageResponse представляет ответ с одним сообщением (ошибка валидации)
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ при ошибке обработки
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error"`
}
