package league

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

func (m *MockRepo) CreateLeague(ctx context.Context, league *models.League) error {
	args := m.Called(ctx, league)
	return args.Error(0)
}

func (m *MockRepo) GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockRepo) GetLeagueByInviteCode(ctx context.Context, code string) (*models.League, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockRepo) DeleteLeague(ctx context.Context, leagueID uuid.UUID) error {
	args := m.Called(ctx, leagueID)
	return args.Error(0)
}

func (m *MockRepo) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.League), args.Error(1)
}

func (m *MockRepo) CreateMember(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockRepo) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, leagueID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockRepo) GetMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockRepo) DeleteMember(ctx context.Context, memberID uuid.UUID) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockRepo) CountMembers(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) CreateEntry(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepo) ListEntries(ctx context.Context, memberID uuid.UUID) ([]models.Entry, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID uuid.UUID, req *CreateLeagueRequest) (*LeagueResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LeagueResponse), args.Error(1)
}

func (m *MockService) Join(ctx context.Context, userID uuid.UUID, req *JoinLeagueRequest) (*LeagueResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LeagueResponse), args.Error(1)
}

func (m *MockService) Leave(ctx context.Context, userID, leagueID uuid.UUID) error {
	args := m.Called(ctx, userID, leagueID)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, userID, leagueID uuid.UUID) error {
	args := m.Called(ctx, userID, leagueID)
	return args.Error(0)
}

func (m *MockService) ListMine(ctx context.Context, userID uuid.UUID) ([]LeagueResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LeagueResponse), args.Error(1)
}

func (m *MockService) Members(ctx context.Context, userID, leagueID uuid.UUID) ([]MemberResponse, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MemberResponse), args.Error(1)
}

func (m *MockService) Leaderboard(ctx context.Context, userID, leagueID uuid.UUID) ([]LeaderboardRow, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LeaderboardRow), args.Error(1)
}

func (m *MockService) Ledger(ctx context.Context, userID, leagueID uuid.UUID) ([]EntryResponse, error) {
	args := m.Called(ctx, userID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EntryResponse), args.Error(1)
}
