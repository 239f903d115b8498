package repoargs

import "github.com/fsdevblog/groph-estate/internal/domain"

type CreateUser struct {
	Email    string
	Name     string
	Phone    string
	Password string
	Role     domain.RoleType
}

// UpdateWallet сохраняет кошелек, если его версия в базе совпадает с Wallet.Version.
type UpdateWallet struct {
	UserID int64
	Wallet domain.Wallet
}

// UpdateKYC переводит KYC статус юзера в To, если текущий статус входит в From.
// DocumentURL обновляется только если не nil.
type UpdateKYC struct {
	UserID      int64
	From        []domain.KYCStatusType
	To          domain.KYCStatusType
	DocumentURL *string
}
