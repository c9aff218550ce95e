package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/core/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WarehouseServiceTestSuite struct {
	suite.Suite
	repo    *MockWarehouseRepository
	service portssvc.WarehouseSvcFacade
	ctx     context.Context
	userID  string
}

func (suite *WarehouseServiceTestSuite) SetupTest() {
	suite.repo = new(MockWarehouseRepository)
	suite.service = services.NewWarehouseService(suite.repo, 5, services.WithClock(fixedClock))
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *WarehouseServiceTestSuite) expectTx() {
	suite.repo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.repo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_In() {
	suite.expectTx()
	suite.repo.On("LockProduct", suite.ctx, mock.Anything, suite.userID, "p1").
		Return(&domain.Product{ProductID: "p1", Name: "Arroz", Category: "Granos", Stock: 4}, nil).Once()
	suite.repo.On("SaveMovement", suite.ctx, mock.Anything, mock.MatchedBy(func(m domain.Movement) bool {
		return m.ProductName == "Arroz" && m.ProductCategory == "Granos" && m.Qty == 6 && m.Type == domain.MovementIn
	})).Return(nil).Once()
	suite.repo.On("UpdateProductStock", suite.ctx, mock.Anything, suite.userID, "p1", 10).Return(nil).Once()
	suite.repo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "p1", Qty: 6, Type: "IN"})

	suite.Require().NoError(err)
	suite.Equal(fixedNow, movement.CreatedAt)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_OutDownToZero() {
	suite.expectTx()
	suite.repo.On("LockProduct", suite.ctx, mock.Anything, suite.userID, "p1").
		Return(&domain.Product{ProductID: "p1", Name: "Arroz", Stock: 3}, nil).Once()
	suite.repo.On("SaveMovement", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.repo.On("UpdateProductStock", suite.ctx, mock.Anything, suite.userID, "p1", 0).Return(nil).Once()
	suite.repo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "p1", Qty: 3, Type: "out"})

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_OutBeyondStock() {
	suite.expectTx()
	suite.repo.On("LockProduct", suite.ctx, mock.Anything, suite.userID, "p1").
		Return(&domain.Product{ProductID: "p1", Name: "Arroz", Stock: 2}, nil).Once()

	movement, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "p1", Qty: 3, Type: "out"})

	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything, mock.Anything)
	suite.repo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_ProductNotFound() {
	suite.expectTx()
	suite.repo.On("LockProduct", suite.ctx, mock.Anything, suite.userID, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "ghost", Qty: 1, Type: "in"})

	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_InvalidRequestSkipsDatabase() {
	movement, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "p1", Qty: 1, Type: "sideways"})

	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestRegisterMovement_StockUpdateFails() {
	suite.expectTx()
	suite.repo.On("LockProduct", suite.ctx, mock.Anything, suite.userID, "p1").
		Return(&domain.Product{ProductID: "p1", Name: "Arroz", Stock: 2}, nil).Once()
	suite.repo.On("SaveMovement", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.repo.On("UpdateProductStock", suite.ctx, mock.Anything, suite.userID, "p1", 3).Return(assert.AnError).Once()

	movement, err := suite.service.RegisterMovement(suite.ctx, suite.userID, dto.RegisterMovementRequest{ProductID: "p1", Qty: 1, Type: "in"})

	suite.Nil(movement)
	suite.ErrorIs(err, assert.AnError)
	suite.repo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestCreateProduct() {
	suite.repo.On("SaveProduct", suite.ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID != "" && p.Name == "Frijoles" && p.UserID == suite.userID
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(suite.ctx, suite.userID, dto.CreateProductRequest{Name: " Frijoles ", Stock: 8})

	suite.Require().NoError(err)
	suite.Equal(8, product.Stock)
	suite.Equal(fixedNow, product.CreatedAt)
}

func (suite *WarehouseServiceTestSuite) TestCreateProduct_BlankName() {
	product, err := suite.service.CreateProduct(suite.ctx, suite.userID, dto.CreateProductRequest{Name: "   "})

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WarehouseServiceTestSuite) TestGetWarehouseStats() {
	products := []domain.Product{
		{Name: "Arroz", Category: "Granos", Stock: 2, MinStock: 3},
		{Name: "Aceite", Category: "Aceites", Stock: 40},
		{Name: "Frijoles", Category: "Granos", Stock: 5},
	}
	suite.repo.On("ListProducts", suite.ctx, suite.userID, domain.ProductFilter{}).Return(products, 3, nil).Once()

	stats, err := suite.service.GetWarehouseStats(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(3, stats.TotalProducts)
	suite.Equal(2, stats.LowStockCount)
	suite.Equal([]domain.CategoryCount{{Name: "Granos", Value: 2}, {Name: "Aceites", Value: 1}}, stats.Distribution)
	suite.Require().Len(stats.TopByStock, 3)
	suite.Equal("Aceite", stats.TopByStock[0].Name)
}

func (suite *WarehouseServiceTestSuite) TestListMovements_Error() {
	filter := domain.MovementFilter{ProductID: "p1"}
	suite.repo.On("ListMovements", suite.ctx, suite.userID, filter).Return(nil, 0, assert.AnError).Once()

	page, err := suite.service.ListMovements(suite.ctx, suite.userID, filter)

	suite.Nil(page)
	suite.ErrorIs(err, assert.AnError)
}

func TestWarehouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseServiceTestSuite))
}
