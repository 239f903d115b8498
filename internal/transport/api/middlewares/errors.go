package middlewares

import (
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusPaymentRequired:
		return "insufficient funds"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// StatusByOutcome http статус ответа для результата операции сервисного слоя.
func StatusByOutcome(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeValidation:
		return http.StatusUnprocessableEntity
	case domain.OutcomeNotFound:
		return http.StatusNotFound
	case domain.OutcomeForbidden:
		return http.StatusForbidden
	case domain.OutcomeConflict:
		return http.StatusConflict
	case domain.OutcomeInsufficientFunds:
		return http.StatusPaymentRequired
	case domain.OutcomeDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Errors отдает клиенту первую ошибку запроса. Текст приватных ошибок заменяется текстом статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// тело уже отдано обработчиком, например через AbortWithStatusJSON.
		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		accept := c.GetHeader("Accept")
		contentType := c.GetHeader("Content-Type")
		switch {
		case strings.Contains(accept, "application/json"),
			strings.Contains(contentType, "application/json"):
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		default:
			c.String(c.Writer.Status(), msg)
		}
		c.Abort()
	}
}
