package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
)

// PropertyService минимальный каталог объектов. Полноценное управление каталогом ведется вне сервиса.
type PropertyService struct {
	propertyRepo PropertyRepository
}

func NewPropertyService(u uow.UOW) (*PropertyService, error) {
	propertyRepo, err := getRepo[PropertyRepository](u, repoargs.PropertyRepoName)
	if err != nil {
		return nil, err
	}
	return &PropertyService{propertyRepo: propertyRepo}, nil
}

type CreatePropertyArgs struct {
	Name              string
	MinInvestment     decimal.Decimal
	AvailableToInvest decimal.Decimal
	MonthlyReturnRate decimal.Decimal
	LockInMonths      int
}

func (p *PropertyService) Create(ctx context.Context, actor domain.Actor, args CreatePropertyArgs) (*domain.Property, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args.Name) == "" {
		return nil, fmt.Errorf("%w: property name is required", domain.ErrValidation)
	}
	if args.MinInvestment.IsNegative() || !args.AvailableToInvest.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if args.LockInMonths <= 0 {
		return nil, domain.ErrInvalidLockIn
	}

	property, err := p.propertyRepo.Create(ctx, repoargs.CreateProperty{
		Name:              strings.TrimSpace(args.Name),
		MinInvestment:     floorAmount(args.MinInvestment),
		AvailableToInvest: floorAmount(args.AvailableToInvest),
		MonthlyReturnRate: args.MonthlyReturnRate,
		LockInMonths:      args.LockInMonths,
	})
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}
	return property, nil
}

func (p *PropertyService) GetAll(ctx context.Context) ([]domain.Property, error) {
	properties, err := p.propertyRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return properties, nil
}

func (p *PropertyService) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := p.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return property, nil
}
