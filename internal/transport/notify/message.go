package notify

import (
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/groph-estate/internal/domain"
)

// Message формат уведомления для внешних каналов.
type Message struct {
	UserID  int64                   `json:"userId"`
	Type    domain.NotificationType `json:"type"`
	Message string                  `json:"message"`
}

func encode(event domain.NotificationEvent) ([]byte, error) {
	payload, err := json.Marshal(Message{
		UserID:  event.UserID,
		Type:    event.Type,
		Message: event.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("encode notification: %s", err.Error())
	}
	return payload, nil
}
