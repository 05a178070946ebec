package services_test

import (
	"context"
	"testing"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/core/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindPreference(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreference(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- Test Suite ---
type PreferenceServiceTestSuite struct {
	suite.Suite
	mockPrefRepo *MockPreferenceRepository
	service      portssvc.PreferenceSvcFacade
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockPrefRepo = new(MockPreferenceRepository)
	suite.service = services.NewPreferenceService(suite.mockPrefRepo)
}

// --- Test Cases ---

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_DefaultsToBase() {
	ctx := context.Background()

	suite.mockPrefRepo.On("FindPreference", ctx, domain.PreferenceKeyDisplayCurrency).
		Return("", apperrors.ErrNotFound).Once()

	code, err := suite.service.GetDisplayCurrency(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.BaseCurrency, code)
	suite.mockPrefRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestGetDisplayCurrency_ReturnsStored() {
	ctx := context.Background()

	suite.mockPrefRepo.On("FindPreference", ctx, domain.PreferenceKeyDisplayCurrency).
		Return("EUR", nil).Once()

	code, err := suite.service.GetDisplayCurrency(ctx)

	suite.Require().NoError(err)
	suite.Equal("EUR", code)
}

func (suite *PreferenceServiceTestSuite) TestSetDisplayCurrency_NormalizesCode() {
	ctx := context.Background()

	suite.mockPrefRepo.On("SavePreference", ctx, domain.PreferenceKeyDisplayCurrency, "USD").
		Return(nil).Once()

	err := suite.service.SetDisplayCurrency(ctx, " usd ")

	suite.Require().NoError(err)
	suite.mockPrefRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSetDisplayCurrency_EmptyRejected() {
	ctx := context.Background()

	err := suite.service.SetDisplayCurrency(ctx, "  ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPrefRepo.AssertNotCalled(suite.T(), "SavePreference")
}

// --- Run Suite ---
func TestPreferenceService(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
