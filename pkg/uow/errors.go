package uow

import "errors"

// Ошибки реестра репозиториев и транзакций. Сервисы не отличают их друг от друга и отдают как внутренние.
var (
	ErrRepositoryNotRegistered     = errors.New("uow: no repository registered under this name")
	ErrRepositoryAlreadyRegistered = errors.New("uow: repository name is already taken")
	ErrInvalidRepositoryType       = errors.New("uow: repository does not implement requested interface")
	ErrNilRepositoryFactory        = errors.New("uow: repository factory is nil")
	ErrTxAttemptsExhausted         = errors.New("uow: gave up after serialization conflicts")
)
