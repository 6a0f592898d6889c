package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/core/services"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListClosedShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	args := m.Called(ctx, branchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID string, actualBalance decimal.Decimal, closedAt time.Time) error {
	args := m.Called(ctx, shiftID, actualBalance, closedAt)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateExpectedBalance(ctx context.Context, shiftID string, balance decimal.Decimal) error {
	args := m.Called(ctx, shiftID, balance)
	return args.Error(0)
}

func (m *MockShiftRepository) IncrementExpectedBalance(ctx context.Context, shiftID string, delta decimal.Decimal) error {
	args := m.Called(ctx, shiftID, delta)
	return args.Error(0)
}

// --- Test Suite ---
type ShiftServiceTestSuite struct {
	suite.Suite
	mockRepo *MockShiftRepository
	service  portssvc.ShiftSvcFacade
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockShiftRepository)
	suite.service = services.NewShiftService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ShiftServiceTestSuite) TestOpenShift_Success() {
	ctx := context.Background()
	branchID := uuid.NewString()
	operator := uuid.NewString()
	opening := decimal.NewFromInt(500)

	suite.mockRepo.On("FindOpenShiftByBranch", ctx, branchID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.BranchID == branchID &&
			s.Status == domain.ShiftOpen &&
			s.OpeningBalance.Equal(opening) &&
			s.ExpectedBalance.Equal(opening) &&
			s.OpenedBy == operator
	})).Return(nil).Once()

	shift, err := suite.service.OpenShift(ctx, branchID, opening, operator)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.Equal(branchID, shift.BranchID)
	suite.True(shift.IsOpen())
	suite.True(shift.ExpectedBalance.Equal(opening))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestOpenShift_NegativeOpeningBalance() {
	ctx := context.Background()

	shift, err := suite.service.OpenShift(ctx, uuid.NewString(), decimal.NewFromInt(-1), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_AlreadyOpen() {
	ctx := context.Background()
	branchID := uuid.NewString()
	existing := &domain.Shift{ShiftID: uuid.NewString(), BranchID: branchID, Status: domain.ShiftOpen}

	suite.mockRepo.On("FindOpenShiftByBranch", ctx, branchID).Return(existing, nil).Once()

	shift, err := suite.service.OpenShift(ctx, branchID, decimal.NewFromInt(100), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrAlreadyOpenShift)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_LostRaceOnSave() {
	ctx := context.Background()
	branchID := uuid.NewString()

	suite.mockRepo.On("FindOpenShiftByBranch", ctx, branchID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrAlreadyOpenShift).Once()

	shift, err := suite.service.OpenShift(ctx, branchID, decimal.NewFromInt(100), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrAlreadyOpenShift)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_Success() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	actual := decimal.NewFromInt(950)
	expected := decimal.NewFromInt(1000)
	closedAt := time.Now().UTC()
	closed := &domain.Shift{
		ShiftID:         shiftID,
		Status:          domain.ShiftClosed,
		ExpectedBalance: expected,
		ActualBalance:   &actual,
		ClosedAt:        &closedAt,
	}

	suite.mockRepo.On("CloseShift", ctx, shiftID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(actual)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindShiftByID", ctx, shiftID).Return(closed, nil).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, actual)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.False(shift.IsOpen())
	suite.True(shift.Difference().Equal(decimal.NewFromInt(-50)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AlreadyClosed() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockRepo.On("CloseShift", ctx, shiftID, mock.Anything, mock.Anything).Return(apperrors.ErrShiftNotOpen).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, decimal.NewFromInt(100))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrShiftNotOpen)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindShiftByID", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_NegativeActualBalance() {
	ctx := context.Background()

	shift, err := suite.service.CloseShift(ctx, uuid.NewString(), decimal.NewFromInt(-10))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestGetOpenShift_NoneOpen() {
	ctx := context.Background()
	branchID := uuid.NewString()

	suite.mockRepo.On("FindOpenShiftByBranch", ctx, branchID).Return(nil, apperrors.ErrNotFound).Once()

	shift, err := suite.service.GetOpenShift(ctx, branchID)

	suite.Require().NoError(err)
	suite.Nil(shift)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOpenShift_RepoError() {
	ctx := context.Background()
	branchID := uuid.NewString()

	suite.mockRepo.On("FindOpenShiftByBranch", ctx, branchID).Return(nil, assert.AnError).Once()

	shift, err := suite.service.GetOpenShift(ctx, branchID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetShift_NotFound() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockRepo.On("FindShiftByID", ctx, shiftID).Return(nil, apperrors.ErrNotFound).Once()

	shift, err := suite.service.GetShift(ctx, shiftID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
