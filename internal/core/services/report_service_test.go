package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/core/narrative"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/core/services"
	"github.com/SscSPs/business_management_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	txnRepo       *MockTransactionRepository
	warehouseRepo *MockWarehouseRepository
	inventoryRepo *MockInventoryReader
	metrics       *metrics.Metrics
	service       portssvc.ReportService
	ctx           context.Context
	userID        string
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.warehouseRepo = new(MockWarehouseRepository)
	suite.inventoryRepo = new(MockInventoryReader)
	suite.metrics = metrics.New()
	suite.service = services.NewReportService(suite.txnRepo, suite.warehouseRepo, suite.inventoryRepo, suite.metrics, services.WithClock(fixedClock))
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *ReportServiceTestSuite) TestFinanceReport_UsesPeriodBounds() {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{{
		TransactionID: "t1", Type: domain.Income, Currency: domain.USD,
		Amount: decimal.NewFromInt(250), Category: "Ventas", Date: from,
	}}
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID, domain.TransactionFilter{From: &from, Until: &until}).
		Return(txns, 1, nil).Once()

	report, err := suite.service.FinanceReport(suite.ctx, suite.userID, domain.ReportPeriod{Label: "Mayo 2024", From: &from, Until: &until})

	suite.Require().NoError(err)
	suite.Equal(narrative.FinanceReportTitle, report.Title)
	suite.NotEmpty(report.Sections)
	count, err := testutil.GatherAndCount(suite.metrics.Registry(), "bma_reports_generated_total")
	suite.Require().NoError(err)
	suite.Equal(1, count)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestFinanceReport_FetchError() {
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID, mock.Anything).Return(nil, 0, assert.AnError).Once()

	report, err := suite.service.FinanceReport(suite.ctx, suite.userID, domain.ReportPeriod{})

	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportServiceTestSuite) TestWarehouseReport() {
	suite.warehouseRepo.On("ListMovements", suite.ctx, suite.userID, domain.MovementFilter{}).
		Return([]domain.Movement{{ProductID: "p1", ProductName: "Arroz", Qty: 4, Type: domain.MovementIn}}, 1, nil).Once()

	report, err := suite.service.WarehouseReport(suite.ctx, suite.userID, domain.ReportPeriod{})

	suite.Require().NoError(err)
	suite.Equal(narrative.WarehouseReportTitle, report.Title)
}

func (suite *ReportServiceTestSuite) TestInventoryReport() {
	suite.inventoryRepo.On("ListAreaSummaries", suite.ctx, suite.userID).
		Return([]domain.InventoryAreaSummary{{AreaID: "a1", Name: "Oficina", ItemsCount: 3}}, nil).Once()

	report, err := suite.service.InventoryReport(suite.ctx, suite.userID, domain.ReportPeriod{})

	suite.Require().NoError(err)
	suite.Equal(narrative.InventoryReportTitle, report.Title)
}

func (suite *ReportServiceTestSuite) TestGlobalReport() {
	suite.txnRepo.On("ListTransactions", mock.Anything, suite.userID, mock.Anything).Return([]domain.Transaction{}, 0, nil).Once()
	suite.warehouseRepo.On("ListMovements", mock.Anything, suite.userID, mock.Anything).Return([]domain.Movement{}, 0, nil).Once()
	suite.inventoryRepo.On("ListAreaSummaries", mock.Anything, suite.userID).Return([]domain.InventoryAreaSummary{}, nil).Once()

	report, err := suite.service.GlobalReport(suite.ctx, suite.userID, domain.ReportPeriod{})

	suite.Require().NoError(err)
	suite.Equal(narrative.GlobalReportTitle, report.Title)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.warehouseRepo.AssertExpectations(suite.T())
	suite.inventoryRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGlobalReport_AnyFetchErrorFails() {
	suite.txnRepo.On("ListTransactions", mock.Anything, suite.userID, mock.Anything).Return([]domain.Transaction{}, 0, nil).Maybe()
	suite.warehouseRepo.On("ListMovements", mock.Anything, suite.userID, mock.Anything).Return(nil, 0, assert.AnError).Once()
	suite.inventoryRepo.On("ListAreaSummaries", mock.Anything, suite.userID).Return([]domain.InventoryAreaSummary{}, nil).Maybe()

	report, err := suite.service.GlobalReport(suite.ctx, suite.userID, domain.ReportPeriod{})

	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
	count, gatherErr := testutil.GatherAndCount(suite.metrics.Registry(), "bma_reports_generated_total")
	suite.Require().NoError(gatherErr)
	suite.Zero(count)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
