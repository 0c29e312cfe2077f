package wager

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type ServiceTestSuite struct {
	suite.Suite
	service  Service
	repo     *MockRepo
	notifier *MockNotifier
	sqlMock  sqlmock.Sqlmock

	userID uuid.UUID
	league *models.League
	member *models.Member
	prop   *models.Prop
}

func (suite *ServiceTestSuite) SetupTest() {
	db, sqlMock, err := sqlmock.New()
	suite.Require().NoError(err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	suite.Require().NoError(err)

	suite.sqlMock = sqlMock
	suite.repo = &MockRepo{}
	suite.notifier = &MockNotifier{}
	suite.service = NewService(gormDB, suite.repo, suite.notifier)

	suite.userID = uuid.New()
	suite.league = &models.League{
		ID:   uuid.New(),
		Mode: models.PayoutModePool,
	}
	suite.member = &models.Member{
		ID:       uuid.New(),
		LeagueID: suite.league.ID,
		UserID:   suite.userID,
		Credits:  decimal.NewFromInt(500),
	}
	suite.prop = &models.Prop{
		ID:              uuid.New(),
		LeagueID:        suite.league.ID,
		Kind:            models.PropKindBinary,
		Status:          models.PropStatusLive,
		WagerAmount:     decimal.NewFromInt(100),
		BettingDeadline: time.Now().Add(time.Hour),
	}
}

func TestWagerService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) expectHappyPathReads() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetMemberForUpdate", mock.Anything, suite.league.ID, suite.userID).Return(suite.member, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(models.WagerPool{}, nil)
}

func (suite *ServiceTestSuite) TestPlace_PoolFixedStake() {
	suite.expectHappyPathReads()
	suite.repo.On("CreateWager", mock.Anything, mock.MatchedBy(func(w *models.Wager) bool {
		return w.Amount.Equal(decimal.NewFromInt(100)) && w.Side == models.SideYes
	})).Return(nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.Credits.Equal(decimal.NewFromInt(400))
	})).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypeStake && e.Validate() == nil &&
			e.Amount.Equal(decimal.NewFromInt(-100))
	})).Return(nil)

	// Requested amount is ignored in POOL mode.
	resp, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes, Amount: decimal.NewFromInt(7)})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(100)))
	suite.Require().NotNil(resp.RemainingCredits)
	suite.True(resp.RemainingCredits.Equal(decimal.NewFromInt(400)))
	suite.repo.AssertExpectations(suite.T())
	suite.NoError(suite.sqlMock.ExpectationsWereMet())
}

func (suite *ServiceTestSuite) TestPlace_RankChosenStake() {
	suite.league.Mode = models.PayoutModeRank
	suite.expectHappyPathReads()
	suite.repo.On("CreateWager", mock.Anything, mock.MatchedBy(func(w *models.Wager) bool {
		return w.Amount.Equal(decimal.NewFromInt(250))
	})).Return(nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)

	resp, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideNo, Amount: decimal.NewFromInt(250)})

	suite.NoError(err)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *ServiceTestSuite) TestPlace_RankBelowMinimum() {
	suite.league.Mode = models.PayoutModeRank
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetMemberForUpdate", mock.Anything, suite.league.ID, suite.userID).Return(suite.member, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(models.WagerPool{}, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes, Amount: decimal.NewFromInt(50)})

	suite.ErrorIs(err, models.ErrWagerBelowMinimum)
	suite.repo.AssertNotCalled(suite.T(), "CreateWager", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestPlace_DeadlinePassed() {
	suite.prop.BettingDeadline = time.Now().Add(-time.Minute)
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.ErrorIs(err, models.ErrBettingClosed)
}

func (suite *ServiceTestSuite) TestPlace_PropNotLive() {
	suite.prop.Status = models.PropStatusResolved
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.ErrorIs(err, models.ErrBettingClosed)
}

func (suite *ServiceTestSuite) TestPlace_InvalidSide() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideOver})

	suite.ErrorIs(err, models.ErrInvalidSide)
}

func (suite *ServiceTestSuite) TestPlace_NotMember() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetMemberForUpdate", mock.Anything, suite.league.ID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.ErrorIs(err, models.ErrNotLeagueMember)
}

func (suite *ServiceTestSuite) TestPlace_DuplicateWager() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetMemberForUpdate", mock.Anything, suite.league.ID, suite.userID).Return(suite.member, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(models.WagerPool{
		{ID: uuid.New(), PropID: suite.prop.ID, MemberID: suite.member.ID,
			Amount: decimal.NewFromInt(100), Side: models.SideYes},
	}, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideNo})

	suite.ErrorIs(err, models.ErrDuplicateWager)
}

func (suite *ServiceTestSuite) TestPlace_InsufficientCredits() {
	suite.member.Credits = decimal.NewFromInt(40)
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetMemberForUpdate", mock.Anything, suite.league.ID, suite.userID).Return(suite.member, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(models.WagerPool{}, nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.ErrorIs(err, models.ErrInsufficientCredits)
	// Balance untouched by the failed debit.
	suite.True(suite.member.Credits.Equal(decimal.NewFromInt(40)))
	suite.repo.AssertNotCalled(suite.T(), "CreateWager", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestPlace_NotifiesTargetMember() {
	targetID := uuid.New()
	suite.prop.TargetMemberID = &targetID

	suite.expectHappyPathReads()
	suite.repo.On("CreateWager", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)
	suite.notifier.On("NotifyBetOnYou", mock.Anything, suite.prop, suite.member.ID).Return()

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.NoError(err)
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestPlace_NoSelfNotification() {
	suite.prop.TargetMemberID = &suite.member.ID

	suite.expectHappyPathReads()
	suite.repo.On("CreateWager", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.Place(context.Background(), suite.userID, suite.prop.ID,
		&PlaceWagerRequest{Side: models.SideYes})

	suite.NoError(err)
	suite.notifier.AssertNotCalled(suite.T(), "NotifyBetOnYou", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestGetPool() {
	other := uuid.New()
	pool := models.WagerPool{
		{ID: uuid.New(), PropID: suite.prop.ID, MemberID: suite.member.ID,
			Amount: decimal.NewFromInt(100), Side: models.SideYes},
		{ID: uuid.New(), PropID: suite.prop.ID, MemberID: other,
			Amount: decimal.NewFromInt(60), Side: models.SideNo},
	}

	suite.repo.On("GetProp", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetMember", mock.Anything, suite.league.ID, suite.userID).Return(suite.member, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(pool, nil)

	resp, err := suite.service.GetPool(context.Background(), suite.userID, suite.prop.ID)

	suite.NoError(err)
	suite.True(resp.TotalStaked.Equal(decimal.NewFromInt(160)))
	suite.Require().Len(resp.Sides, 2)
	suite.Equal(models.SideYes, resp.Sides[0].Side)
	suite.True(resp.Sides[0].TotalStaked.Equal(decimal.NewFromInt(100)))
	suite.Equal(1, resp.Sides[1].WagerCount)
	suite.Len(resp.Wagers, 2)
}

func (suite *ServiceTestSuite) TestGetPool_NotMember() {
	suite.repo.On("GetProp", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetMember", mock.Anything, suite.league.ID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetPool(context.Background(), suite.userID, suite.prop.ID)

	suite.ErrorIs(err, models.ErrNotLeagueMember)
}
