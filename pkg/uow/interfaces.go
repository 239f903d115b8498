package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepositoryName ключ репозитория в реестре (users, holdings, payouts и т.д.).
type RepositoryName string

// Repository конкретный репозиторий, сервис приводит его к своему интерфейсу через GetAs/GetRepositoryAs.
type Repository any

// RepositoryFactory строит репозиторий поверх пула или открытой транзакции.
type RepositoryFactory func(DBTX) Repository

// DBTX то, что нужно репозиториям от pgx: пул и транзакция реализуют его одинаково.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// TX доступ к репозиториям внутри Do. Кошелек, вложение и запись в журнале операций, полученные
// через один TX, пишутся одной транзакцией.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

type UOW interface {
	// Register добавляет фабрику репозитория. Повторная регистрация имени - ErrRepositoryAlreadyRegistered.
	Register(name RepositoryName, factory RepositoryFactory) error
	// Do выполняет fn в транзакции с повтором при конфликте сериализации. Ошибка fn откатывает все изменения.
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	// GetRepository репозиторий поверх пула, для чтений без транзакции.
	GetRepository(name RepositoryName) (Repository, error)
}
