package prop

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/propleague/ante/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Create(ctx context.Context, prop *models.Prop) error {
	args := m.Called(ctx, prop)
	return args.Error(0)
}

func (m *MockRepo) GetByID(ctx context.Context, propID uuid.UUID) (*models.Prop, error) {
	args := m.Called(ctx, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prop), args.Error(1)
}

func (m *MockRepo) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prop, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prop), args.Error(1)
}

func (m *MockRepo) GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockRepo) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, leagueID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockRepo) GetMemberByID(ctx context.Context, memberID uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockRepo) GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error) {
	args := m.Called(ctx, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.WagerPool), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID uuid.UUID, req *CreatePropRequest) (*PropResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PropResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID, propID uuid.UUID) (*PropResponse, error) {
	args := m.Called(ctx, userID, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PropResponse), args.Error(1)
}

func (m *MockService) ListByLeague(ctx context.Context, userID, leagueID uuid.UUID) ([]PropResponse, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PropResponse), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyPropOnYou(ctx context.Context, prop *models.Prop, creatorMemberID uuid.UUID) {
	m.Called(ctx, prop, creatorMemberID)
}
