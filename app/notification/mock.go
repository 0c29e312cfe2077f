package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/propleague/ante/models"
)

// MockRepo is a mock implementation of the Repository interface
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockRepo) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) MemberBelongsToUser(ctx context.Context, memberID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, memberID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]NotificationResponse, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]NotificationResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*NotificationResponse), args.Error(1)
}

func (m *MockService) NotifyPropOnYou(ctx context.Context, prop *models.Prop, creatorMemberID uuid.UUID) {
	m.Called(ctx, prop, creatorMemberID)
}

func (m *MockService) NotifyBetOnYou(ctx context.Context, prop *models.Prop, actorMemberID uuid.UUID) {
	m.Called(ctx, prop, actorMemberID)
}

func (m *MockService) NotifyBetWon(ctx context.Context, prop *models.Prop, memberID uuid.UUID, amount decimal.Decimal) {
	m.Called(ctx, prop, memberID, amount)
}

func (m *MockService) NotifyPropSettled(ctx context.Context, prop *models.Prop, memberIDs []uuid.UUID) {
	m.Called(ctx, prop, memberIDs)
}
