package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) WithTx(_ *gorm.DB) Repository {
	return m
}

func (m *MockRepo) GetPropForUpdate(ctx context.Context, propID uuid.UUID) (*models.Prop, error) {
	args := m.Called(ctx, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prop), args.Error(1)
}

func (m *MockRepo) GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockRepo) GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error) {
	args := m.Called(ctx, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.WagerPool), args.Error(1)
}

func (m *MockRepo) GetMembersForUpdate(ctx context.Context, memberIDs []uuid.UUID) ([]models.Member, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockRepo) UpdateProp(ctx context.Context, prop *models.Prop) error {
	args := m.Called(ctx, prop)
	return args.Error(0)
}

func (m *MockRepo) UpdateMemberCredits(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockRepo) CreateEntry(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Resolve(ctx context.Context, userID, propID uuid.UUID, req *ResolvePropRequest) (*SettlementResponse, error) {
	args := m.Called(ctx, userID, propID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettlementResponse), args.Error(1)
}

func (m *MockService) Cancel(ctx context.Context, userID, propID uuid.UUID) (*SettlementResponse, error) {
	args := m.Called(ctx, userID, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettlementResponse), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBetWon(ctx context.Context, prop *models.Prop, memberID uuid.UUID, amount decimal.Decimal) {
	m.Called(ctx, prop, memberID, amount)
}

func (m *MockNotifier) NotifyPropSettled(ctx context.Context, prop *models.Prop, memberIDs []uuid.UUID) {
	m.Called(ctx, prop, memberIDs)
}
