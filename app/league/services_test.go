package league

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/propleague/ante/internal/cache"
	"github.com/propleague/ante/internal/logger"
	"github.com/propleague/ante/models"
)

type ServiceTestSuite struct {
	suite.Suite
	service Service
	repo    *MockRepo
	cache   cache.Cache[string]
	sqlMock sqlmock.Sqlmock

	userID uuid.UUID
}

func (suite *ServiceTestSuite) SetupTest() {
	db, sqlMock, err := sqlmock.New()
	suite.Require().NoError(err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	suite.Require().NoError(err)

	suite.sqlMock = sqlMock
	suite.repo = &MockRepo{}
	suite.cache = cache.NewMemoryCache[string]()
	suite.service = NewService(gormDB, suite.repo, suite.cache, GetDefaultConfig(), logger.NewNullLogger())

	suite.userID = uuid.New()
}

func TestLeagueService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) testLeague() *models.League {
	return &models.League{
		ID:              uuid.New(),
		OwnerID:         suite.userID,
		Name:            "Office League",
		InviteCode:      "ABCD2345",
		Mode:            models.PayoutModePool,
		StartingCredits: decimal.NewFromInt(1000),
	}
}

func (suite *ServiceTestSuite) TestCreate_SeedsOwnerMember() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()

	suite.repo.On("CreateLeague", mock.Anything, mock.MatchedBy(func(l *models.League) bool {
		return l.OwnerID == suite.userID && l.Mode == models.PayoutModePool &&
			l.StartingCredits.Equal(decimal.NewFromInt(1000))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.League).ID = uuid.New()
	}).Return(nil)
	suite.repo.On("CreateMember", mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.UserID == suite.userID && m.Credits.Equal(decimal.NewFromInt(1000))
	})).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypeSeed && e.Validate() == nil
	})).Return(nil)

	resp, err := suite.service.Create(context.Background(), suite.userID, &CreateLeagueRequest{
		Name: "Office League",
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(suite.userID, resp.OwnerID)
	suite.repo.AssertExpectations(suite.T())
	suite.NoError(suite.sqlMock.ExpectationsWereMet())
}

func (suite *ServiceTestSuite) TestCreate_InvalidName() {
	_, err := suite.service.Create(context.Background(), suite.userID, &CreateLeagueRequest{
		Name: "",
	})

	suite.ErrorIs(err, models.ErrInvalidLeagueName)
	suite.repo.AssertNotCalled(suite.T(), "CreateLeague", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestJoin_Success() {
	league := suite.testLeague()
	joiner := uuid.New()

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
	suite.repo.On("GetLeagueByInviteCode", mock.Anything, "ABCD2345").Return(league, nil)
	suite.repo.On("GetMember", mock.Anything, league.ID, joiner).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.On("CreateMember", mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.LeagueID == league.ID && m.Credits.Equal(league.StartingCredits)
	})).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypeSeed
	})).Return(nil)

	resp, err := suite.service.Join(context.Background(), joiner, &JoinLeagueRequest{InviteCode: " abcd2345 "})

	suite.NoError(err)
	suite.Equal(league.ID, resp.ID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestJoin_UnknownCode() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetLeagueByInviteCode", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Join(context.Background(), suite.userID, &JoinLeagueRequest{InviteCode: "NOPE"})

	suite.ErrorIs(err, models.ErrInvalidInviteCode)
}

func (suite *ServiceTestSuite) TestJoin_AlreadyMember() {
	league := suite.testLeague()

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetLeagueByInviteCode", mock.Anything, "ABCD2345").Return(league, nil)
	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).
		Return(&models.Member{ID: uuid.New()}, nil)

	_, err := suite.service.Join(context.Background(), suite.userID, &JoinLeagueRequest{InviteCode: "ABCD2345"})

	suite.ErrorIs(err, models.ErrAlreadyMember)
	suite.repo.AssertNotCalled(suite.T(), "CreateMember", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestLeave_LastMemberDeletesLeague() {
	league := suite.testLeague()
	member := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID}

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
	suite.repo.On("GetLeagueByID", mock.Anything, league.ID).Return(league, nil)
	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(member, nil)
	suite.repo.On("CountMembers", mock.Anything, league.ID).Return(int64(1), nil)
	suite.repo.On("DeleteMember", mock.Anything, member.ID).Return(nil)
	suite.repo.On("DeleteLeague", mock.Anything, league.ID).Return(nil)

	err := suite.service.Leave(context.Background(), suite.userID, league.ID)

	suite.NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestLeave_OwnerBlockedWhileOthersRemain() {
	league := suite.testLeague()
	member := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID}

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetLeagueByID", mock.Anything, league.ID).Return(league, nil)
	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(member, nil)
	suite.repo.On("CountMembers", mock.Anything, league.ID).Return(int64(3), nil)

	err := suite.service.Leave(context.Background(), suite.userID, league.ID)

	suite.ErrorIs(err, models.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "DeleteMember", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestLeave_NonOwnerKeepsLeague() {
	league := suite.testLeague()
	other := uuid.New()
	member := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: other}

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
	suite.repo.On("GetLeagueByID", mock.Anything, league.ID).Return(league, nil)
	suite.repo.On("GetMember", mock.Anything, league.ID, other).Return(member, nil)
	suite.repo.On("CountMembers", mock.Anything, league.ID).Return(int64(2), nil)
	suite.repo.On("DeleteMember", mock.Anything, member.ID).Return(nil)

	err := suite.service.Leave(context.Background(), other, league.ID)

	suite.NoError(err)
	suite.repo.AssertNotCalled(suite.T(), "DeleteLeague", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestDelete_OwnerOnly() {
	league := suite.testLeague()
	suite.repo.On("GetLeagueByID", mock.Anything, league.ID).Return(league, nil)

	err := suite.service.Delete(context.Background(), uuid.New(), league.ID)

	suite.ErrorIs(err, models.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "DeleteLeague", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestDelete_Success() {
	league := suite.testLeague()
	suite.repo.On("GetLeagueByID", mock.Anything, league.ID).Return(league, nil)
	suite.repo.On("DeleteLeague", mock.Anything, league.ID).Return(nil)

	err := suite.service.Delete(context.Background(), suite.userID, league.ID)

	suite.NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestLeaderboard_RanksByCredits() {
	league := suite.testLeague()
	me := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID}
	members := []models.Member{
		{ID: uuid.New(), LeagueID: league.ID, UserID: uuid.New(),
			Credits: decimal.NewFromInt(1500), User: &models.User{Name: "Alice"}},
		{ID: uuid.New(), LeagueID: league.ID, UserID: uuid.New(),
			Credits: decimal.NewFromInt(900), User: &models.User{Name: "Bob"}},
	}

	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(me, nil)
	suite.repo.On("GetMembers", mock.Anything, league.ID).Return(members, nil).Once()

	rows, err := suite.service.Leaderboard(context.Background(), suite.userID, league.ID)

	suite.NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(1, rows[0].Rank)
	suite.Equal("Alice", rows[0].Name)
	suite.True(rows[0].Credits.Equal(decimal.NewFromInt(1500)))
	suite.Equal(2, rows[1].Rank)
}

func (suite *ServiceTestSuite) TestLeaderboard_ServedFromCache() {
	league := suite.testLeague()
	me := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID}
	members := []models.Member{
		{ID: uuid.New(), LeagueID: league.ID, UserID: uuid.New(), Credits: decimal.NewFromInt(100)},
	}

	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(me, nil)
	// The second lookup must come from the cache, not the repository.
	suite.repo.On("GetMembers", mock.Anything, league.ID).Return(members, nil).Once()

	first, err := suite.service.Leaderboard(context.Background(), suite.userID, league.ID)
	suite.NoError(err)

	second, err := suite.service.Leaderboard(context.Background(), suite.userID, league.ID)
	suite.NoError(err)

	suite.Equal(first, second)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestLeaderboard_NotMember() {
	leagueID := uuid.New()
	suite.repo.On("GetMember", mock.Anything, leagueID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Leaderboard(context.Background(), suite.userID, leagueID)

	suite.ErrorIs(err, models.ErrNotLeagueMember)
}

func (suite *ServiceTestSuite) TestMembers() {
	league := suite.testLeague()
	me := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID}
	members := []models.Member{*me}

	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(me, nil)
	suite.repo.On("GetMembers", mock.Anything, league.ID).Return(members, nil)

	resp, err := suite.service.Members(context.Background(), suite.userID, league.ID)

	suite.NoError(err)
	suite.Len(resp, 1)
	suite.Equal(me.ID, resp[0].ID)
}

func (suite *ServiceTestSuite) TestLedger() {
	league := suite.testLeague()
	me := &models.Member{ID: uuid.New(), LeagueID: league.ID, UserID: suite.userID, Credits: decimal.NewFromInt(900)}
	entries := []models.Entry{
		{
			ID:            uuid.New(),
			MemberID:      me.ID,
			LeagueID:      league.ID,
			EntryType:     models.EntryTypeStake,
			Amount:        decimal.NewFromInt(-100),
			BalanceBefore: decimal.NewFromInt(1000),
			BalanceAfter:  decimal.NewFromInt(900),
		},
		{
			ID:            uuid.New(),
			MemberID:      me.ID,
			LeagueID:      league.ID,
			EntryType:     models.EntryTypeSeed,
			Amount:        decimal.NewFromInt(1000),
			BalanceBefore: decimal.Zero,
			BalanceAfter:  decimal.NewFromInt(1000),
		},
	}

	suite.repo.On("GetMember", mock.Anything, league.ID, suite.userID).Return(me, nil)
	suite.repo.On("ListEntries", mock.Anything, me.ID).Return(entries, nil)

	resp, err := suite.service.Ledger(context.Background(), suite.userID, league.ID)

	suite.NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal(models.EntryTypeStake, resp[0].EntryType)
	suite.True(resp[0].Amount.Equal(decimal.NewFromInt(-100)))
	suite.True(resp[1].BalanceAfter.Equal(decimal.NewFromInt(1000)))
}

func (suite *ServiceTestSuite) TestLedger_NotMember() {
	leagueID := uuid.New()
	suite.repo.On("GetMember", mock.Anything, leagueID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Ledger(context.Background(), suite.userID, leagueID)

	suite.ErrorIs(err, models.ErrNotLeagueMember)
}
