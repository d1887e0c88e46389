package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var (
	// CORSAllowedMethods - методы, разрешенные для кросс-доменных запросов
	CORSAllowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodOptions,
		http.MethodPut, http.MethodPatch, http.MethodDelete,
	}
	// CORSAllowedHeaders - заголовки, разрешенные для кросс-доменных запросов
	CORSAllowedHeaders = []string{"Content-Type", "Authorization"}
)

// CORSMiddleware создает middleware с политикой CORS для списка источников origins.
// Запросы с учетными данными разрешены.
func CORSMiddleware(origins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   CORSAllowedMethods,
		AllowedHeaders:   CORSAllowedHeaders,
		AllowCredentials: true,
	})
	return c.Handler
}
