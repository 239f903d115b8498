package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain. Так же
//     ведут себя условные UPDATE ... RETURNING, не затронувшие ни одной строки.
//   - Нарушение уникальности (uniqueViolationCode) возвращается как ErrDuplicateKey.
//   - Ссылка на несуществующую запись (foreignKeyViolationCode) возвращается как ErrRecordNotFound.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
//
// Ошибки pgconn.PgError дополнительно присоединяются к цепочке, чтобы unit of work мог распознать
// конфликт сериализации и повторить транзакцию.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
		return fmt.Errorf("[repository/%s] %w: %w", msg, errType, pgErr)
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
