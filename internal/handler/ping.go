package handler

import (
	"net/http"
)

// HandlePing отвечает 200 OK, пока процесс способен обслуживать запросы
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
