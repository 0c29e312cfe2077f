package settlement

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

	"github.com/propleague/ante/models"
)

type ServiceTestSuite struct {
	suite.Suite
	service  Service
	repo     *MockRepo
	notifier *MockNotifier
	sqlMock  sqlmock.Sqlmock

	ownerID uuid.UUID
	league  *models.League
	prop    *models.Prop
}

func (suite *ServiceTestSuite) SetupTest() {
	db, sqlMock, err := sqlmock.New()
	suite.Require().NoError(err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	suite.Require().NoError(err)

	suite.sqlMock = sqlMock
	suite.repo = &MockRepo{}
	suite.notifier = &MockNotifier{}
	suite.service = NewService(gormDB, suite.repo, NewPayoutEngine(GetDefaultConfig()), suite.notifier)

	suite.ownerID = uuid.New()
	suite.league = &models.League{
		ID:      uuid.New(),
		OwnerID: suite.ownerID,
		Mode:    models.PayoutModePool,
	}
	suite.prop = &models.Prop{
		ID:       uuid.New(),
		LeagueID: suite.league.ID,
		Kind:     models.PropKindBinary,
		Status:   models.PropStatusLive,
	}
}

func TestSettlementService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) member(credits int64) *models.Member {
	return &models.Member{
		ID:       uuid.New(),
		LeagueID: suite.league.ID,
		UserID:   uuid.New(),
		Credits:  decimal.NewFromInt(credits),
	}
}

func (suite *ServiceTestSuite) wager(member *models.Member, side string, amount int64) models.Wager {
	return models.Wager{
		ID:       uuid.New(),
		PropID:   suite.prop.ID,
		MemberID: member.ID,
		Amount:   decimal.NewFromInt(amount),
		Side:     side,
	}
}

func (suite *ServiceTestSuite) expectTxCommit() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
}

func (suite *ServiceTestSuite) expectTxRollback() {
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
}

func (suite *ServiceTestSuite) TestResolve_PoolPayout() {
	alice := suite.member(0)
	bob := suite.member(500)
	pool := models.WagerPool{
		suite.wager(alice, models.SideYes, 100),
		suite.wager(bob, models.SideNo, 100),
	}

	suite.expectTxCommit()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(pool, nil)
	suite.repo.On("GetMembersForUpdate", mock.Anything, []uuid.UUID{alice.ID}).
		Return([]models.Member{*alice}, nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		return m.ID == alice.ID && m.Credits.Equal(decimal.NewFromInt(200))
	})).Return(nil)
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypePayout && e.Validate() == nil
	})).Return(nil)
	suite.repo.On("UpdateProp", mock.Anything, mock.MatchedBy(func(p *models.Prop) bool {
		return p.Status == models.PropStatusResolved && p.WinningSide != nil && *p.WinningSide == models.SideYes
	})).Return(nil)

	suite.notifier.On("NotifyBetWon", mock.Anything, suite.prop, alice.ID, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.NewFromInt(200))
	})).Return()
	suite.notifier.On("NotifyPropSettled", mock.Anything, suite.prop, mock.Anything).Return()

	resp, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(models.PropStatusResolved, resp.Status)
	suite.True(resp.TotalPaid.Equal(decimal.NewFromInt(200)))
	suite.Len(resp.Payouts, 1)
	suite.repo.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
	suite.NoError(suite.sqlMock.ExpectationsWereMet())
}

func (suite *ServiceTestSuite) TestResolve_AutoCancelRefundsEveryone() {
	bob := suite.member(0)
	carol := suite.member(0)
	pool := models.WagerPool{
		suite.wager(bob, models.SideNo, 100),
		suite.wager(carol, models.SideNo, 50),
	}

	suite.expectTxCommit()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(pool, nil)
	suite.repo.On("GetMembersForUpdate", mock.Anything, mock.Anything).
		Return([]models.Member{*bob, *carol}, nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypeRefund
	})).Return(nil).Twice()
	suite.repo.On("UpdateProp", mock.Anything, mock.MatchedBy(func(p *models.Prop) bool {
		return p.Status == models.PropStatusCanceled && p.WinningSide == nil
	})).Return(nil)
	suite.notifier.On("NotifyPropSettled", mock.Anything, suite.prop, mock.Anything).Return()

	resp, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.NoError(err)
	suite.Equal(models.PropStatusCanceled, resp.Status)
	suite.Nil(resp.WinningSide)
	suite.True(resp.TotalPaid.Equal(decimal.NewFromInt(150)))
	suite.notifier.AssertNotCalled(suite.T(), "NotifyBetWon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestResolve_NotOwner() {
	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)

	_, err := suite.service.Resolve(context.Background(), uuid.New(), suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.ErrorIs(err, models.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "UpdateProp", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestResolve_AlreadyFinalized() {
	side := models.SideYes
	suite.prop.Status = models.PropStatusResolved
	suite.prop.WinningSide = &side

	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)

	_, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.ErrorIs(err, models.ErrPropFinalized)
}

func (suite *ServiceTestSuite) TestResolve_PropNotFound() {
	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.ErrorIs(err, models.ErrRecordNotFound)
}

func (suite *ServiceTestSuite) TestResolve_InvalidSide() {
	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(models.WagerPool{}, nil)

	_, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: "over"})

	suite.ErrorIs(err, models.ErrInvalidSide)
}

func (suite *ServiceTestSuite) TestResolve_MissingMemberRollsBack() {
	alice := suite.member(0)
	pool := models.WagerPool{suite.wager(alice, models.SideYes, 100)}

	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(pool, nil)
	suite.repo.On("GetMembersForUpdate", mock.Anything, mock.Anything).Return([]models.Member{}, nil)

	_, err := suite.service.Resolve(context.Background(), suite.ownerID, suite.prop.ID,
		&ResolvePropRequest{WinningSide: models.SideYes})

	suite.ErrorIs(err, models.ErrMemberMissing)
	suite.repo.AssertNotCalled(suite.T(), "UpdateProp", mock.Anything, mock.Anything)
	suite.notifier.AssertNotCalled(suite.T(), "NotifyPropSettled", mock.Anything, mock.Anything, mock.Anything)
	suite.NoError(suite.sqlMock.ExpectationsWereMet())
}

func (suite *ServiceTestSuite) TestCancel_RefundsAllStakes() {
	alice := suite.member(10)
	bob := suite.member(20)
	pool := models.WagerPool{
		suite.wager(alice, models.SideYes, 75),
		suite.wager(bob, models.SideNo, 25),
	}

	suite.expectTxCommit()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)
	suite.repo.On("GetWagers", mock.Anything, suite.prop.ID).Return(pool, nil)
	suite.repo.On("GetMembersForUpdate", mock.Anything, mock.Anything).
		Return([]models.Member{*alice, *bob}, nil)
	suite.repo.On("UpdateMemberCredits", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.repo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.EntryType == models.EntryTypeRefund && e.Validate() == nil
	})).Return(nil).Twice()
	suite.repo.On("UpdateProp", mock.Anything, mock.MatchedBy(func(p *models.Prop) bool {
		return p.Status == models.PropStatusCanceled
	})).Return(nil)
	suite.notifier.On("NotifyPropSettled", mock.Anything, suite.prop, mock.Anything).Return()

	resp, err := suite.service.Cancel(context.Background(), suite.ownerID, suite.prop.ID)

	suite.NoError(err)
	suite.Equal(models.PropStatusCanceled, resp.Status)
	suite.True(resp.TotalPaid.Equal(decimal.NewFromInt(100)))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestCancel_NotOwner() {
	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)

	_, err := suite.service.Cancel(context.Background(), uuid.New(), suite.prop.ID)

	suite.ErrorIs(err, models.ErrForbidden)
}

func (suite *ServiceTestSuite) TestCancel_AlreadyFinalized() {
	suite.prop.Status = models.PropStatusCanceled

	suite.expectTxRollback()
	suite.repo.On("GetPropForUpdate", mock.Anything, suite.prop.ID).Return(suite.prop, nil)
	suite.repo.On("GetLeague", mock.Anything, suite.league.ID).Return(suite.league, nil)

	_, err := suite.service.Cancel(context.Background(), suite.ownerID, suite.prop.ID)

	suite.ErrorIs(err, models.ErrPropFinalized)
}
