package service

import (
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	serviceSuite
	service *NotificationService
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewNotificationService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *NotificationServiceTestSuite) TestList() {
	actor := domain.Actor{ID: 5, Role: domain.RoleUser}
	page := repoargs.Page{Limit: 20, Offset: 40}

	s.mockNotificationRepo.EXPECT().
		GetByUserID(gomock.Any(), actor.ID, page).
		Return([]domain.Notification{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}, nil)

	notifications, err := s.service.List(s.T().Context(), actor, page)
	s.Require().NoError(err)
	s.Len(notifications, 2)
}

// Чужое уведомление репозиторий не находит, поэтому наружу уходит NotFound.
func (s *NotificationServiceTestSuite) TestMarkReadForeign() {
	actor := domain.Actor{ID: 5, Role: domain.RoleUser}

	s.mockNotificationRepo.EXPECT().
		MarkRead(gomock.Any(), int64(77), actor.ID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.MarkRead(s.T().Context(), actor, 77)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *NotificationServiceTestSuite) TestMarkRead() {
	actor := domain.Actor{ID: 5, Role: domain.RoleUser}

	s.mockNotificationRepo.EXPECT().
		MarkRead(gomock.Any(), int64(7), actor.ID).
		Return(&domain.Notification{ID: 7, UserID: 5, Read: true}, nil)

	n, err := s.service.MarkRead(s.T().Context(), actor, 7)
	s.Require().NoError(err)
	s.True(n.Read)
}
