package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/storecore/loyalty/internal/client"
	mocks "github.com/storecore/loyalty/internal/client/mocks"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"go.uber.org/mock/gomock"
)

func TestGetOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		OrderNumber    string
		ExpectedStatus string
		ExpectedError  error
	}{
		{
			TestName: "Success. Order processed #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:        "200 OK",
					StatusCode:    http.StatusOK,
					Body:          io.NopCloser(bytes.NewBufferString(`{"order":"123456","status":"PROCESSED"}`)),
					ContentLength: int64(len(`{"order":"123456","status":"PROCESSED"}`)),
					Header:        make(http.Header),
				}, nil)
			},
			OrderNumber:    "123456",
			ExpectedStatus: models.OrderStatusProcessed,
			ExpectedError:  nil,
		},
		{
			TestName: "Error. Order not registered #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:        "204",
					StatusCode:    http.StatusNoContent,
					Body:          io.NopCloser(bytes.NewBufferString("")),
					ContentLength: int64(len("")),
					Header:        make(http.Header),
				}, nil)
			},
			OrderNumber:    "000000",
			ExpectedStatus: "",
			ExpectedError:  client.ErrOrderNotRegistered,
		},
		{
			TestName: "Error. Too many requests #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "429 Too Many Requests",
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString("No more than N requests per minute allowed")),
					Header: http.Header{
						"Retry-After":  []string{"120"},
						"Content-Type": []string{"application/json"},
					},
				}, nil)
			},
			OrderNumber:    "654321",
			ExpectedStatus: models.OrderStatusProcessing,
			ExpectedError:  nil,
		},
		{
			TestName: "Error. Gateway error is retried #4",
			SetupMocks: func() {
				// неуспешный ответ шлюза ретраится до исчерпания попыток
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "500",
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(bytes.NewBufferString("")),
					Header:     make(http.Header),
				}, nil).Times(3)
			},
			OrderNumber:    "123123",
			ExpectedStatus: "",
			ExpectedError:  client.ErrServiceUnavailable,
		},
		{
			TestName: "Error. Invalid order status #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "200 OK",
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`{"order":"999999","status":"UNKNOWN"}`)),
					Header:     make(http.Header),
				}, nil)
			},
			OrderNumber:    "999999",
			ExpectedStatus: "",
			ExpectedError:  errors.New("undefined status request UNKNOWN"),
		},
		{
			TestName: "Error. Failed decode response #6",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:        "200 OK",
					StatusCode:    http.StatusOK,
					Body:          io.NopCloser(bytes.NewBufferString(`{"orders":"999999","statuses":"UNKNOWN"}`)),
					ContentLength: int64(len(`{"orders":"999999","statuses":"UNKNOWN"}`)),
					Header:        make(http.Header),
				}, nil)
			},
			OrderNumber:    "invalid",
			ExpectedStatus: "",
			ExpectedError:  fmt.Errorf("undefined status request %s", ""),
		},
		{
			TestName: "Error. Invalid URL request #7",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:        "404",
					StatusCode:    http.StatusNotFound,
					Body:          io.NopCloser(bytes.NewBufferString("123")),
					ContentLength: int64(len("123")),
					Header:        make(http.Header),
				}, nil).Times(3)
			},
			OrderNumber:    "failure",
			ExpectedStatus: "",
			ExpectedError:  client.ErrServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			service := &GatewayService{
				Client:     client.NewClient("", mockHTTPClient),
				Limiter:    client.NewRateLimiter(),
				RetryBase:  time.Millisecond,
				MaxRetries: 2,
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			status, err := service.GetOrderStatus(ctx, tc.OrderNumber)

			if status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%v', got: '%v'", tc.ExpectedStatus, status)
			}
			if tc.ExpectedError != nil {
				if err == nil {
					t.Errorf("Expected error: '%v', got: nil", tc.ExpectedError)
				} else if !strings.Contains(err.Error(), tc.ExpectedError.Error()) {
					t.Errorf("Expected error containing: '%v', got '%v'", tc.ExpectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		})
	}
}
