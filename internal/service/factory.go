package service

import (
	"fmt"

	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService              *UserService
	KYCService               *KYCService
	PropertyService          *PropertyService
	HoldingService           *HoldingService
	InvestmentRequestService *InvestmentRequestService
	PayoutService            *PayoutService
	WithdrawalService        *WithdrawalService
	TransferService          *TransferService
	OfflineTransferService   *OfflineTransferService
	WalletService            *WalletService
	NotificationService      *NotificationService
}

type FactoryArgs struct {
	JWTSecret []byte
	Hasher    PasswordHasher
	Notifier  Notifier
	Logger    *logrus.Logger
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, args.JWTSecret, args.Hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	offlineService, offlineServiceErr := NewOfflineTransferService(unitOfWork, args.Notifier, args.Logger)
	if offlineServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", offlineServiceErr.Error())
	}

	kycService, kycServiceErr := NewKYCService(unitOfWork, offlineService, args.Notifier, args.Logger)
	if kycServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", kycServiceErr.Error())
	}

	propertyService, propertyServiceErr := NewPropertyService(unitOfWork)
	if propertyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", propertyServiceErr.Error())
	}

	holdingService, holdingServiceErr := NewHoldingService(unitOfWork, offlineService, args.Logger)
	if holdingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", holdingServiceErr.Error())
	}

	investmentService, investmentServiceErr := NewInvestmentRequestService(unitOfWork, args.Notifier)
	if investmentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", investmentServiceErr.Error())
	}

	payoutService, payoutServiceErr := NewPayoutService(unitOfWork, args.Notifier, args.Logger)
	if payoutServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", payoutServiceErr.Error())
	}

	withdrawalService, withdrawalServiceErr := NewWithdrawalService(unitOfWork, args.Notifier)
	if withdrawalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", withdrawalServiceErr.Error())
	}

	transferService, transferServiceErr := NewTransferService(unitOfWork, args.Notifier)
	if transferServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transferServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	notificationService, notificationServiceErr := NewNotificationService(unitOfWork)
	if notificationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", notificationServiceErr.Error())
	}

	return &AppServices{
		UserService:              userService,
		KYCService:               kycService,
		PropertyService:          propertyService,
		HoldingService:           holdingService,
		InvestmentRequestService: investmentService,
		PayoutService:            payoutService,
		WithdrawalService:        withdrawalService,
		TransferService:          transferService,
		OfflineTransferService:   offlineService,
		WalletService:            walletService,
		NotificationService:      notificationService,
	}, nil
}
