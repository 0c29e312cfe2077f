package wager

import (
	"context"

	"github.com/google/uuid"
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

func (m *MockRepo) GetProp(ctx context.Context, propID uuid.UUID) (*models.Prop, error) {
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

func (m *MockRepo) GetMemberForUpdate(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, leagueID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockRepo) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, leagueID, userID)
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

func (m *MockRepo) CreateWager(ctx context.Context, wager *models.Wager) error {
	args := m.Called(ctx, wager)
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

func (m *MockService) Place(ctx context.Context, userID, propID uuid.UUID, req *PlaceWagerRequest) (*WagerResponse, error) {
	args := m.Called(ctx, userID, propID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*WagerResponse), args.Error(1)
}

func (m *MockService) GetPool(ctx context.Context, userID, propID uuid.UUID) (*PoolResponse, error) {
	args := m.Called(ctx, userID, propID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PoolResponse), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBetOnYou(ctx context.Context, prop *models.Prop, actorMemberID uuid.UUID) {
	m.Called(ctx, prop, actorMemberID)
}
