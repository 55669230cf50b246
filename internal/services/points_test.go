package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/storage"
	"github.com/storecore/loyalty/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

// defaultRulesService - сервис правил поверх пустого хранилища:
// действует конфигурация по умолчанию
func defaultRulesService(ctrl *gomock.Controller) RulesService {
	mockRules := mocks.NewMockRulesStorage(ctrl)
	mockRules.EXPECT().GetRules(gomock.Any()).Return(nil, storage.ErrRulesNotFound).AnyTimes()
	return NewRules(mockRules, time.Minute)
}

func TestPointsService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	points := NewPoints(mockAccounts, mockUsers, defaultRulesService(ctrl))

	testCases := []struct {
		Name            string
		Login           string
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance *models.BalanceResponse
	}{
		{
			Name:  "Error. User not found #1",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError:   storage.ErrUserNotFound,
			ExpectedBalance: nil,
		},
		{
			Name:  "Success. No account yet is a zero balance #2",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda"}, nil)
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError: nil,
			ExpectedBalance: &models.BalanceResponse{
				Balance:     0,
				TotalEarned: 0,
			},
		},
		{
			Name:  "Success. Tier derived from lifetime points #3",
			Login: "mda",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Login: "mda"}, nil)
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(&models.PointsAccount{UserID: "1", Balance: 200, TotalEarned: 1500}, nil)
			},
			ExpectedError: nil,
			ExpectedBalance: &models.BalanceResponse{
				Balance:     200,
				TotalEarned: 1500,
			},
		},
	}

	expectedTiers := map[string]string{
		"Success. No account yet is a zero balance #2":  "bronze",
		"Success. Tier derived from lifetime points #3": "gold",
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			balance, err := points.GetBalance(ctx, tc.Login)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedBalance != nil && balance != nil {
				if balance.Balance != tc.ExpectedBalance.Balance {
					t.Errorf("Expected balance %d, got: %d", tc.ExpectedBalance.Balance, balance.Balance)
				}
				if balance.TotalEarned != tc.ExpectedBalance.TotalEarned {
					t.Errorf("Expected total earned %d, got: %d", tc.ExpectedBalance.TotalEarned, balance.TotalEarned)
				}
				if balance.Tier.ID != expectedTiers[tc.Name] {
					t.Errorf("Expected tier '%s', got: '%s'", expectedTiers[tc.Name], balance.Tier.ID)
				}
			}
			if tc.ExpectedBalance == nil && balance != nil {
				t.Errorf("Expected no balance, got: %v", balance)
			}
		})
	}
}

func TestPointsService_AwardPurchasePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	points := NewPoints(mockAccounts, mockUsers, defaultRulesService(ctrl))

	testCases := []struct {
		Name          string
		UserID        string
		Amount        decimal.Decimal
		OrderID       string
		SetupMocks    func()
		ExpectedError error
		ExpectedAward int64
	}{
		{
			Name:    "Success. First purchase creates account #1",
			UserID:  "1",
			Amount:  decimal.NewFromInt(250),
			OrderID: "79927398713",
			SetupMocks: func() {
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(nil, storage.ErrAccountNotFound)
				mockAccounts.EXPECT().CreateAccount(gomock.Any(), "1").Return(nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
						if transaction.Type != models.TransactionPurchase {
							t.Errorf("Expected purchase transaction, got: '%s'", transaction.Type)
						}
						if transaction.Amount != 25 {
							t.Errorf("Expected award 25, got: %d", transaction.Amount)
						}
						if transaction.OrderID != "79927398713" {
							t.Errorf("Expected order id in transaction, got: '%s'", transaction.OrderID)
						}
						return &models.PointsAccount{UserID: "1", Balance: 25, TotalEarned: 25}, nil
					})
			},
			ExpectedError: nil,
			ExpectedAward: 25,
		},
		{
			Name:    "Success. Multiplier of the tier before purchase #2",
			UserID:  "1",
			Amount:  decimal.NewFromInt(250),
			OrderID: "12345678903",
			SetupMocks: func() {
				// накоплено 500 - уровень silver, множитель 1.25
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(&models.PointsAccount{UserID: "1", Balance: 100, TotalEarned: 500}, nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
						if transaction.Amount != 31 {
							t.Errorf("Expected award 31, got: %d", transaction.Amount)
						}
						return &models.PointsAccount{UserID: "1", Balance: 131, TotalEarned: 531}, nil
					})
			},
			ExpectedError: nil,
			ExpectedAward: 31,
		},
		{
			Name:    "Success. Tiny order awards nothing #3",
			UserID:  "1",
			Amount:  decimal.NewFromInt(5),
			OrderID: "4561261212345467",
			SetupMocks: func() {
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(&models.PointsAccount{UserID: "1"}, nil)
			},
			ExpectedError: nil,
			ExpectedAward: 0,
		},
		{
			Name:    "Error. Duplicate order #4",
			UserID:  "1",
			Amount:  decimal.NewFromInt(250),
			OrderID: "79927398713",
			SetupMocks: func() {
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "1").Return(&models.PointsAccount{UserID: "1", Balance: 25, TotalEarned: 25}, nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists)
			},
			ExpectedError: ErrOrderAlreadyProcessed,
			ExpectedAward: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			award, err := points.AwardPurchasePoints(ctx, tc.UserID, tc.Amount, tc.OrderID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if award != tc.ExpectedAward {
				t.Errorf("Expected award %d, got: %d", tc.ExpectedAward, award)
			}
		})
	}
}

func TestPointsService_AdminAdjustPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	points := NewPoints(mockAccounts, mockUsers, defaultRulesService(ctrl))

	testCases := []struct {
		Name            string
		Login           string
		Delta           int64
		SetupMocks      func()
		ExpectedError   error
		ExpectedAccount *models.PointsAccount
	}{
		{
			Name:          "Error. Zero delta #1",
			Login:         "mda",
			Delta:         0,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAdjustment,
		},
		{
			Name:  "Error. User not found #2",
			Login: "mda",
			Delta: 100,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			Name:  "Success. Positive adjustment #3",
			Login: "mda",
			Delta: 100,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().CreateAccount(gomock.Any(), "1").Return(nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
						if transaction.Type != models.TransactionAdminAdd {
							t.Errorf("Expected admin_add transaction, got: '%s'", transaction.Type)
						}
						if transaction.AdminID != "root" {
							t.Errorf("Expected admin attribution, got: '%s'", transaction.AdminID)
						}
						return &models.PointsAccount{UserID: "1", Balance: 100, TotalEarned: 100}, nil
					})
			},
			ExpectedError:   nil,
			ExpectedAccount: &models.PointsAccount{UserID: "1", Balance: 100, TotalEarned: 100},
		},
		{
			Name:  "Error. Deduction below zero #4",
			Login: "mda",
			Delta: -300,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().CreateAccount(gomock.Any(), "1").Return(nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
						if transaction.Type != models.TransactionAdminDeduct {
							t.Errorf("Expected admin_deduct transaction, got: '%s'", transaction.Type)
						}
						if transaction.Amount != 300 {
							t.Errorf("Expected amount 300, got: %d", transaction.Amount)
						}
						return nil, storage.ErrInsufficientFunds
					})
			},
			ExpectedError: ErrInsufficientPoints,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			account, err := points.AdminAdjustPoints(ctx, tc.Login, tc.Delta, "manual correction", "root")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedAccount, account)
			if len(diff) != 0 {
				t.Errorf("expected account mismatch:\n %s", diff)
			}
		})
	}
}
