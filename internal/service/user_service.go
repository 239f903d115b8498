package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service/tokens"
	"github.com/fsdevblog/groph-estate/pkg/uow"
)

const JWTTokenExpire = 24 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token. Возвращает 3 значения:
// созданный юзер, токен и ошибку. Если email занят, возвращает domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	user, err := s.create(ctx, args, domain.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("registering user: %w", err)
	}

	token, tokenErr := tokens.GenerateUserJWT(user, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

// CreateAdmin создает администратора. Администратор в системе может быть только один, повторная попытка
// возвращает domain.ErrAdminExists.
func (s *UserService) CreateAdmin(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	count, countErr := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if countErr != nil {
		return nil, fmt.Errorf("creating admin: %w", countErr)
	}
	if count > 0 {
		return nil, domain.ErrAdminExists
	}

	user, err := s.create(ctx, args, domain.RoleAdmin)
	if err != nil {
		// второй администратор, созданный параллельно, упрется в уникальный индекс по роли
		if errors.Is(err, domain.ErrDuplicateKey) {
			if again, againErr := s.userRepo.CountByRole(ctx, domain.RoleAdmin); againErr == nil && again > 0 {
				return nil, domain.ErrAdminExists
			}
		}
		return nil, fmt.Errorf("creating admin: %w", err)
	}
	return user, nil
}

// Login проверяет email и пароль юзера и выдает jwt token. Возвращает domain.ErrRecordNotFound, если
// юзера нет, и domain.ErrPasswordMissMatch при неверном пароле.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindUserByEmail(ctx, normalizeEmail(args.Email))
	if userErr != nil {
		return nil, "", fmt.Errorf("login user: %w", userErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

func (s *UserService) create(ctx context.Context, args RegisterUserArgs, role domain.RoleType) (*domain.User, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, hashErr //nolint:wrapcheck
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Email:    normalizeEmail(args.Email),
			Name:     args.Name,
			Phone:    args.Phone,
			Password: password,
			Role:     role,
		})
		return userErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
