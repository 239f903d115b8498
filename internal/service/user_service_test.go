package service

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service/mocks"
	"github.com/fsdevblog/groph-estate/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	serviceSuite
	mockPsswd   *mocks.MockPasswordHasher
	jwtSecret   []byte
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.jwtSecret = []byte("secret")

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	savedEmail := gofakeit.Email()
	argsOk := LoginUserArgs{Email: savedEmail, Password: "<PASSWORD>"}
	argsWrongEmail := LoginUserArgs{Email: "wrong@example.com", Password: "<PASSWORD>"}
	argsWrongPass := LoginUserArgs{Email: savedEmail, Password: "wrong pass"}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Email:             normalizeEmail(savedEmail),
		EncryptedPassword: validHashPassword,
		Role:              domain.RoleUser,
		KYCStatus:         domain.KYCStatusApproved,
	}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), normalizeEmail(savedEmail)).
		Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), argsWrongEmail.Email).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "wrong email", args: argsWrongEmail, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(user)
				s.NotEmpty(tokenStr)

				claims, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(savedUser.ID, claims.ID)
				s.Equal(domain.KYCStatusApproved, claims.KYCStatus)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{Email: "Valid@Example.com", Name: gofakeit.Name(), Password: "<PASSWORD>"}
	argsDuplicate := RegisterUserArgs{Email: "dup@example.com", Name: gofakeit.Name(), Password: "<PASSWORD>"}
	validHashedPassword := "hashedPassword"

	createdUser := domain.User{
		ID:                1,
		Email:             "valid@example.com",
		Name:              argsOk.Name,
		EncryptedPassword: validHashedPassword,
		Role:              domain.RoleUser,
		KYCStatus:         domain.KYCStatusNotSubmitted,
	}

	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(validHashedPassword, nil).Times(2)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Email:    "valid@example.com",
			Name:     argsOk.Name,
			Password: validHashedPassword,
			Role:     domain.RoleUser,
		}).
		Return(&createdUser, nil)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Email:    argsDuplicate.Email,
			Name:     argsDuplicate.Name,
			Password: validHashedPassword,
			Role:     domain.RoleUser,
		}).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name      string
		args      RegisterUserArgs
		wantErr   error
		wantUser  *domain.User
		wantToken bool
	}{
		{name: "ok", args: argsOk, wantUser: &createdUser, wantToken: true},
		{name: "duplicate email", args: argsDuplicate, wantErr: domain.ErrDuplicateKey},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Register(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)

			if t.wantToken {
				s.Require().NotEmpty(tokenStr)
				claims, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(user.ID, claims.ID)
				s.Equal(domain.RoleUser, claims.Role)
			} else {
				s.Empty(tokenStr)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestCreateAdmin() {
	args := RegisterUserArgs{Email: "admin@example.com", Name: "Admin", Password: "<PASSWORD>"}

	s.Run("admin exists", func() {
		s.mockUserRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleAdmin).Return(int64(1), nil)

		_, err := s.userService.CreateAdmin(s.T().Context(), args)
		s.Require().ErrorIs(err, domain.ErrAdminExists)
		s.Equal(domain.OutcomeConflict, domain.OutcomeOf(err))
	})

	s.Run("concurrent admin creation", func() {
		gomock.InOrder(
			s.mockUserRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleAdmin).Return(int64(0), nil),
			s.mockUserRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleAdmin).Return(int64(1), nil),
		)
		s.mockPsswd.EXPECT().HashPassword(args.Password).Return("hash", nil)
		s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

		_, err := s.userService.CreateAdmin(s.T().Context(), args)
		s.Require().ErrorIs(err, domain.ErrAdminExists)
	})

	s.Run("created", func() {
		s.mockUserRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleAdmin).Return(int64(0), nil)
		s.mockPsswd.EXPECT().HashPassword(args.Password).Return("hash", nil)
		s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), repoargs.CreateUser{
			Email:    args.Email,
			Name:     args.Name,
			Password: "hash",
			Role:     domain.RoleAdmin,
		}).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		admin, err := s.userService.CreateAdmin(s.T().Context(), args)
		s.Require().NoError(err)
		s.Equal(domain.RoleAdmin, admin.Role)
	})
}
