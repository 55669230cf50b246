package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/storage"
	"github.com/storecore/loyalty/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestRedemptionService_Redeem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockDiscounts := mocks.NewMockDiscountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockAccounts, mockDiscounts, mockUsers, defaultRulesService(ctrl))

	testCases := []struct {
		Name           string
		Login          string
		PointsCost     int64
		SetupMocks     func()
		ExpectedError  error
		ExpectedAmount decimal.Decimal
	}{
		{
			Name:       "Success. Redeem 250 points #1",
			Login:      "mda",
			PointsCost: 250,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
						if transaction.Type != models.TransactionRedemption {
							t.Errorf("Expected redemption transaction, got: '%s'", transaction.Type)
						}
						if transaction.Amount != 250 {
							t.Errorf("Expected amount 250, got: %d", transaction.Amount)
						}
						return &models.PointsAccount{UserID: "1", Balance: 750, TotalEarned: 1000}, nil
					})
				mockDiscounts.EXPECT().AddDiscount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, discount models.DiscountCode) error {
						if !strings.HasPrefix(discount.Code, "LOYAL-") {
							t.Errorf("Expected code prefix, got: '%s'", discount.Code)
						}
						validity := discount.ExpiresAt.Sub(discount.IssuedAt)
						if validity != DiscountValidityPeriod {
							t.Errorf("Expected 30 day validity, got: %v", validity)
						}
						return nil
					})
			},
			ExpectedError:  nil,
			ExpectedAmount: decimal.NewFromInt(150),
		},
		{
			Name:       "Error. Unknown redemption option #2",
			Login:      "mda",
			PointsCost: 333,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
			},
			ExpectedError: ErrUnknownOption,
		},
		{
			Name:       "Error. Not enough points #3",
			Login:      "mda",
			PointsCost: 1000,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedError: ErrInsufficientPoints,
		},
		{
			Name:       "Error. No account yet #4",
			Login:      "mda",
			PointsCost: 250,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockAccounts.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError: ErrInsufficientPoints,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			discount, err := redemption.Redeem(ctx, tc.Login, tc.PointsCost)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if discount == nil {
					t.Fatalf("Expected discount code, got none")
				}
				if !discount.DiscountAmount.Equal(tc.ExpectedAmount) {
					t.Errorf("Expected discount %s, got: %s", tc.ExpectedAmount, discount.DiscountAmount)
				}
				if discount.Used() {
					t.Errorf("Expected fresh code to be unused")
				}
			}
		})
	}
}

func TestRedemptionService_ValidateDiscountCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockDiscounts := mocks.NewMockDiscountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockAccounts, mockDiscounts, mockUsers, defaultRulesService(ctrl))

	now := time.Now()
	usedAt := now.Add(-time.Hour)

	testCases := []struct {
		Name          string
		Code          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Success. Valid code #1",
			Code: "LOYAL-AAAA00000001",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000001").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000001", UserID: "1", DiscountAmount: decimal.NewFromInt(150), IssuedAt: now, ExpiresAt: now.Add(DiscountValidityPeriod)}, nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Error. Code not found #2",
			Code: "LOYAL-AAAA00000002",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000002").Return(nil, storage.ErrDiscountNotFound)
			},
			ExpectedError: ErrCodeNotFound,
		},
		{
			Name: "Error. Code of another user #3",
			Code: "LOYAL-AAAA00000003",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000003").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000003", UserID: "2", ExpiresAt: now.Add(DiscountValidityPeriod)}, nil)
			},
			ExpectedError: ErrCodeNotOwned,
		},
		{
			Name: "Error. Code already used #4",
			Code: "LOYAL-AAAA00000004",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000004").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000004", UserID: "1", ExpiresAt: now.Add(DiscountValidityPeriod), UsedAt: &usedAt}, nil)
			},
			ExpectedError: ErrCodeAlreadyUsed,
		},
		{
			Name: "Error. Code expired #5",
			Code: "LOYAL-AAAA00000005",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000005").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000005", UserID: "1", IssuedAt: now.Add(-31 * 24 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}, nil)
			},
			ExpectedError: ErrCodeExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := redemption.ValidateDiscountCode(ctx, tc.Code, "mda")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestRedemptionService_ApplyDiscountCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockDiscounts := mocks.NewMockDiscountsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockAccounts, mockDiscounts, mockUsers, defaultRulesService(ctrl))

	now := time.Now()

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Success. Code applied once #1",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000001").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000001", UserID: "1", ExpiresAt: now.Add(DiscountValidityPeriod)}, nil)
				mockDiscounts.EXPECT().MarkDiscountUsed(gomock.Any(), "LOYAL-AAAA00000001", gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Error. Lost the race for the code #2",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockDiscounts.EXPECT().GetDiscount(gomock.Any(), "LOYAL-AAAA00000001").Return(
					&models.DiscountCode{Code: "LOYAL-AAAA00000001", UserID: "1", ExpiresAt: now.Add(DiscountValidityPeriod)}, nil)
				mockDiscounts.EXPECT().MarkDiscountUsed(gomock.Any(), "LOYAL-AAAA00000001", gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			ExpectedError: ErrCodeAlreadyUsed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			discount, err := redemption.ApplyDiscountCode(ctx, "LOYAL-AAAA00000001", "mda")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if discount == nil {
					t.Fatalf("Expected discount code, got none")
				}
				if !discount.Used() {
					t.Errorf("Expected code to be marked used")
				}
			}
		})
	}
}

func TestGenerateDiscountCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateDiscountCode()
		if !strings.HasPrefix(code, "LOYAL-") {
			t.Fatalf("Expected code prefix, got: '%s'", code)
		}
		if len(code) != len("LOYAL-")+12 {
			t.Fatalf("Expected 12 character suffix, got: '%s'", code)
		}
		if seen[code] {
			t.Fatalf("Generated duplicate code: '%s'", code)
		}
		seen[code] = true
	}
}
