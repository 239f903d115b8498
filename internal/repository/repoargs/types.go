package repoargs

import "time"

type RepositoryName string

const (
	UserRepoName              RepositoryName = "user"
	PropertyRepoName          RepositoryName = "property"
	HoldingRepoName           RepositoryName = "holding"
	PayoutRepoName            RepositoryName = "payout"
	TransactionRepoName       RepositoryName = "transaction"
	WithdrawalRepoName        RepositoryName = "withdrawal"
	InvestmentRequestRepoName RepositoryName = "investment_request"
	TransferRepoName          RepositoryName = "transfer_request"
	OfflineTransferRepoName   RepositoryName = "offline_transfer"
	NotificationRepoName      RepositoryName = "notification"
)

// BatchExecQueryRow вызывается для каждого запроса батча с его индексом и ошибкой выполнения.
type BatchExecQueryRow func(i int, err error)

// Page параметры постраничной выборки. Нулевой Limit означает значение по умолчанию репозитория.
type Page struct {
	Limit  uint
	Offset uint
}

// StatusTransition описывает атомарный переход статуса From -> To. Переход выполняется только если
// текущий статус записи все еще равен From.
type StatusTransition[S ~string] struct {
	ID      int64
	From    S
	To      S
	ActorID *int64
	Reason  string
	At      time.Time
}
