package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/core/services"
	"github.com/fondita-pos/cash_register_app/internal/dto"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// --- Mock RegistrarService ---
type MockRegistrarService struct {
	mock.Mock
}

func (m *MockRegistrarService) RegisterSale(ctx context.Context, rc portssvc.RegistrarContext, order domain.Order) error {
	args := m.Called(ctx, rc, order)
	return args.Error(0)
}

func (m *MockRegistrarService) RegisterRefund(ctx context.Context, rc portssvc.RegistrarContext, order domain.Order) error {
	args := m.Called(ctx, rc, order)
	return args.Error(0)
}

func (m *MockRegistrarService) RegisterManualMovement(ctx context.Context, shiftID string, req dto.RegisterMovementRequest, operator string) (*domain.Movement, error) {
	args := m.Called(ctx, shiftID, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockOrderRepository
	mockRegistrar *MockRegistrarService
	service       portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.mockRegistrar = new(MockRegistrarService)
	suite.service = services.NewOrderService(suite.mockRepo, suite.mockRegistrar)
}

func (suite *OrderServiceTestSuite) order(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		OrderID:     uuid.NewString(),
		BranchID:    uuid.NewString(),
		Status:      status,
		Total:       decimal.NewFromInt(180),
		PaymentType: "tienda",
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_PendingToActive_NoLedgerEffect() {
	ctx := context.Background()
	stored := suite.order(domain.OrderPending)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderActive).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderActive)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderActive, order.Status)
	suite.mockRegistrar.AssertNotCalled(suite.T(), "RegisterSale", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRegistrar.AssertNotCalled(suite.T(), "RegisterRefund", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_ActiveToCompleted_RegistersSale() {
	ctx := context.Background()
	stored := suite.order(domain.OrderActive)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderCompleted).Return(nil).Once()
	suite.mockRegistrar.On("RegisterSale", ctx, rc, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID == stored.OrderID && o.Status == domain.OrderCompleted
	})).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderCompleted)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCompleted, order.Status)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CompletedToPickedUp_ReregistersSale() {
	ctx := context.Background()
	stored := suite.order(domain.OrderCompleted)
	rc := portssvc.RegistrarContext{}

	// Both money-recognizing transitions invoke the registrar; when the sale
	// was already posted at completed, the registrar's net check no-ops. When
	// it was not (no till open at the time, or a swallowed failure), this
	// second invocation is what posts it.
	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderPickedUp).Return(nil).Once()
	suite.mockRegistrar.On("RegisterSale", ctx, rc, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID == stored.OrderID && o.Status == domain.OrderPickedUp
	})).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderPickedUp)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPickedUp, order.Status)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CompletedToCancelled_RegistersRefund() {
	ctx := context.Background()
	stored := suite.order(domain.OrderCompleted)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderCancelled).Return(nil).Once()
	suite.mockRegistrar.On("RegisterRefund", ctx, rc, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID == stored.OrderID
	})).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderCancelled)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCancelled, order.Status)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_PendingToCancelled_NoRefund() {
	ctx := context.Background()
	stored := suite.order(domain.OrderPending)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderCancelled).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderCancelled)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCancelled, order.Status)
	suite.mockRegistrar.AssertNotCalled(suite.T(), "RegisterRefund", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_InvalidTransition() {
	ctx := context.Background()
	stored := suite.order(domain.OrderCancelled)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderActive)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_RegistrarFailureDoesNotFailTransition() {
	ctx := context.Background()
	stored := suite.order(domain.OrderActive)
	rc := portssvc.RegistrarContext{}

	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, stored.OrderID, domain.OrderCompleted).Return(nil).Once()
	suite.mockRegistrar.On("RegisterSale", ctx, rc, mock.AnythingOfType("domain.Order")).Return(assert.AnError).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, rc, stored.OrderID, domain.OrderCompleted)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCompleted, order.Status)
	suite.mockRegistrar.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_OrderNotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, portssvc.RegistrarContext{}, orderID, domain.OrderActive)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
