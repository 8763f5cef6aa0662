// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

// errorResponse повторяет формат ошибок исходного API: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}
