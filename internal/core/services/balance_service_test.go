package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func amounts(usd, cup string) domain.CurrencyAmounts {
	return domain.CurrencyAmounts{USD: decimal.RequireFromString(usd), CUP: decimal.RequireFromString(cup)}
}

var noBound = (*time.Time)(nil)

// --- Test Suite ---
type BalanceServiceTestSuite struct {
	suite.Suite
	balanceRepo *MockBalanceConfigRepository
	txnRepo     *MockTransactionRepository
	service     portssvc.BalanceSvcFacade
	ctx         context.Context
	userID      string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.balanceRepo = new(MockBalanceConfigRepository)
	suite.txnRepo = new(MockTransactionRepository)
	suite.service = services.NewBalanceService(suite.balanceRepo, suite.txnRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

// ledger of income 100 USD, expense 40 USD and income 2000 CUP
func (suite *BalanceServiceTestSuite) ledger() domain.LedgerTotals {
	return domain.LedgerTotals{
		Income:  amounts("100", "2000"),
		Expense: amounts("40", "0"),
	}
}

func (suite *BalanceServiceTestSuite) TestGetBalanceConfig_NotFoundIsZeroDefault() {
	suite.balanceRepo.On("FindBalanceConfig", suite.ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	cfg, err := suite.service.GetBalanceConfig(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.userID, cfg.UserID)
	suite.True(cfg.InitialBalance.USD.IsZero())
	suite.True(cfg.TotalBalance.CUP.IsZero())
	suite.balanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetBalanceConfig_StoreErrorPropagates() {
	suite.balanceRepo.On("FindBalanceConfig", suite.ctx, suite.userID).Return(nil, assert.AnError).Once()

	cfg, err := suite.service.GetBalanceConfig(suite.ctx, suite.userID)

	suite.Nil(cfg)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BalanceServiceTestSuite) TestUpdateBalanceConfig_TotalIncludesHistory() {
	suite.txnRepo.On("SumTransactions", suite.ctx, suite.userID, noBound, noBound).Return(suite.ledger(), nil)
	suite.balanceRepo.On("UpsertBalanceConfig", suite.ctx, mock.AnythingOfType("domain.BalanceConfig")).Return(nil, nil)

	cfg, err := suite.service.UpdateBalanceConfig(suite.ctx, suite.userID, decimal.Zero, decimal.Zero)
	suite.Require().NoError(err)
	suite.Equal("60", cfg.TotalBalance.USD.String())
	suite.Equal("2000", cfg.TotalBalance.CUP.String())

	cfg, err = suite.service.UpdateBalanceConfig(suite.ctx, suite.userID, decimal.NewFromInt(500), decimal.Zero)
	suite.Require().NoError(err)
	suite.Equal("500", cfg.InitialBalance.USD.String())
	suite.Equal("560", cfg.TotalBalance.USD.String())
	suite.Equal(fixedNow, cfg.UpdatedAt)
}

func (suite *BalanceServiceTestSuite) TestUpdateBalanceConfig_Idempotent() {
	suite.txnRepo.On("SumTransactions", suite.ctx, suite.userID, noBound, noBound).Return(suite.ledger(), nil)
	suite.balanceRepo.On("UpsertBalanceConfig", suite.ctx, mock.AnythingOfType("domain.BalanceConfig")).Return(nil, nil)

	first, err := suite.service.UpdateBalanceConfig(suite.ctx, suite.userID, decimal.NewFromInt(10), decimal.NewFromInt(20))
	suite.Require().NoError(err)
	second, err := suite.service.UpdateBalanceConfig(suite.ctx, suite.userID, decimal.NewFromInt(10), decimal.NewFromInt(20))
	suite.Require().NoError(err)

	suite.True(first.TotalBalance.Equal(second.TotalBalance))
	suite.txnRepo.AssertNumberOfCalls(suite.T(), "SumTransactions", 2)
}

func (suite *BalanceServiceTestSuite) TestUpdateBalanceConfig_SumErrorDoesNotWrite() {
	suite.txnRepo.On("SumTransactions", suite.ctx, suite.userID, noBound, noBound).Return(domain.LedgerTotals{}, assert.AnError).Once()

	cfg, err := suite.service.UpdateBalanceConfig(suite.ctx, suite.userID, decimal.Zero, decimal.Zero)

	suite.Nil(cfg)
	suite.ErrorIs(err, assert.AnError)
	suite.balanceRepo.AssertNotCalled(suite.T(), "UpsertBalanceConfig", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestUpdateBalanceConfig_RejectsUnstorableAmounts() {
	tests := []struct {
		name     string
		usd, cup string
	}{
		{name: "sub-cent USD", usd: "0.004", cup: "0"},
		{name: "three decimals CUP", usd: "0", cup: "12.345"},
		{name: "USD out of range", usd: "10000000000000000", cup: "0"},
		{name: "CUP out of range", usd: "0", cup: "-10000000000000000"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cfg, err := suite.service.UpdateBalanceConfig(suite.ctx, suite.userID,
				decimal.RequireFromString(tt.usd), decimal.RequireFromString(tt.cup))

			suite.Nil(cfg)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.txnRepo.AssertNotCalled(suite.T(), "SumTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.balanceRepo.AssertNotCalled(suite.T(), "UpsertBalanceConfig", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestRecalculateBalance_KeepsInitial() {
	stored := &domain.BalanceConfig{UserID: suite.userID, InitialBalance: amounts("500", "100"), TotalBalance: amounts("1", "1")}
	suite.balanceRepo.On("FindBalanceConfig", suite.ctx, suite.userID).Return(stored, nil).Once()
	suite.txnRepo.On("SumTransactions", suite.ctx, suite.userID, noBound, noBound).Return(suite.ledger(), nil).Once()
	suite.balanceRepo.On("UpsertBalanceConfig", suite.ctx, mock.MatchedBy(func(c domain.BalanceConfig) bool {
		return c.InitialBalance.Equal(stored.InitialBalance) && c.TotalBalance.Equal(amounts("560", "2100"))
	})).Return(nil, nil).Once()

	cfg, err := suite.service.RecalculateBalance(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("560", cfg.TotalBalance.USD.String())
	suite.balanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetDashboardStats() {
	juneStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	julyStart := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	mayStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	bounds := func(from, until time.Time) (any, any) {
		return mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(from) }),
			mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(until) })
	}

	curFrom, curUntil := bounds(juneStart, julyStart)
	prevFrom, prevUntil := bounds(mayStart, juneStart)

	suite.balanceRepo.On("FindBalanceConfig", mock.Anything, suite.userID).
		Return(&domain.BalanceConfig{UserID: suite.userID, TotalBalance: amounts("560", "2000")}, nil).Once()
	suite.txnRepo.On("SumTransactions", mock.Anything, suite.userID, curFrom, curUntil).
		Return(domain.LedgerTotals{Income: amounts("500", "300"), Expense: amounts("0", "150")}, nil).Once()
	suite.txnRepo.On("SumTransactions", mock.Anything, suite.userID, prevFrom, prevUntil).
		Return(domain.LedgerTotals{Income: amounts("0", "200"), Expense: amounts("0", "100")}, nil).Once()

	stats, err := suite.service.GetDashboardStats(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("560", stats.Balance.USD.String())
	suite.Nil(stats.Income.Change.USD, "no prior USD income means no percentage")
	suite.Require().NotNil(stats.Income.Change.CUP)
	suite.Equal("50", stats.Income.Change.CUP.String())
	suite.Nil(stats.Expense.Change.USD)
	suite.Equal("50", stats.Expense.Change.CUP.String())
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetDashboardStats_FetchError() {
	suite.balanceRepo.On("FindBalanceConfig", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound).Maybe()
	suite.txnRepo.On("SumTransactions", mock.Anything, suite.userID, mock.Anything, mock.Anything).
		Return(domain.LedgerTotals{}, assert.AnError)

	stats, err := suite.service.GetDashboardStats(suite.ctx, suite.userID)

	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
