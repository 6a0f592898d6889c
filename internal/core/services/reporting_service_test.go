package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockShifts    *MockShiftRepository
	mockMovements *MockMovementRepository
	service       portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockShifts = new(MockShiftRepository)
	suite.mockMovements = new(MockMovementRepository)
	suite.service = services.NewReportingService(suite.mockShifts, suite.mockMovements)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetShiftTotals_Success() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, Status: domain.ShiftOpen}
	movements := []domain.Movement{
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(200), PaymentMethod: domain.MethodCash},
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(150), PaymentMethod: domain.MethodCard},
		{Type: domain.MovementIncome, Amount: decimal.NewFromInt(50), PaymentMethod: domain.MethodCash},
		{Type: domain.MovementExpense, Amount: decimal.NewFromInt(80), PaymentMethod: domain.MethodCash},
	}

	suite.mockShifts.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockMovements.On("FindMovementsByShift", ctx, shiftID).Return(movements, nil).Once()

	totals, err := suite.service.GetShiftTotals(ctx, shiftID)

	suite.Require().NoError(err)
	suite.True(totals.Cash.Equal(decimal.NewFromInt(170)), "cash: %s", totals.Cash)
	suite.True(totals.Card.Equal(decimal.NewFromInt(150)))
	suite.True(totals.Online.Equal(decimal.Zero))
	suite.True(totals.Expenses.Equal(decimal.NewFromInt(80)))
	suite.True(totals.Income.Equal(decimal.NewFromInt(400)))
	suite.mockMovements.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetShiftTotals_ShiftNotFound() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockShifts.On("FindShiftByID", ctx, shiftID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetShiftTotals(ctx, shiftID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMovements.AssertNotCalled(suite.T(), "FindMovementsByShift", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestListPastShifts_Success() {
	ctx := context.Background()
	branchID := uuid.NewString()
	expected := []domain.Shift{{ShiftID: uuid.NewString(), BranchID: branchID, Status: domain.ShiftClosed}}

	suite.mockShifts.On("ListClosedShiftsByBranch", ctx, branchID, 10).Return(expected, nil).Once()

	shifts, err := suite.service.ListPastShifts(ctx, branchID, 10)

	suite.Require().NoError(err)
	suite.Equal(expected, shifts)
	suite.mockShifts.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListShiftMovements_Success() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, Status: domain.ShiftOpen}
	expected := []domain.Movement{{MovementID: uuid.NewString(), ShiftID: shiftID}}

	suite.mockShifts.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockMovements.On("FindMovementsByShift", ctx, shiftID).Return(expected, nil).Once()

	movements, err := suite.service.ListShiftMovements(ctx, shiftID)

	suite.Require().NoError(err)
	suite.Equal(expected, movements)
	suite.mockMovements.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListShiftMovements_ShiftNotFound() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockShifts.On("FindShiftByID", ctx, shiftID).Return(nil, apperrors.ErrNotFound).Once()

	movements, err := suite.service.ListShiftMovements(ctx, shiftID)

	suite.Require().Error(err)
	suite.Nil(movements)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
