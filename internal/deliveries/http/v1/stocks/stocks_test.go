package stocks

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	mockStocks "github.com/moneta-lab/go-finance-report/internal/clients/stocks/mock"
	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testStocksHelper struct {
	router     *echo.Echo
	mockClient *mockStocks.MockClient
}

func stocksTestHelper(t *testing.T) testStocksHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockClient := mockStocks.NewMockClient(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(app, mockClient)

	return testStocksHelper{
		router:     app,
		mockClient: mockClient,
	}
}

func Test_Handler_getStockQuote(t *testing.T) {
	testHelper := stocksTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success is a one-element list",
			urlCalled: "/stock/AAPL",
			expectation: Expectation{
				wantRes:  `[{"stock":"AAPL","price":150}]`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockClient.EXPECT().
					Quote(gomock.Any(), "AAPL").
					Return(models.StockQuote{Stock: "AAPL", Price: decimal.NewFromInt(150)}, nil)
			},
		},
		{
			name:      "unknown symbol",
			urlCalled: "/stock/NOPE",
			expectation: Expectation{
				wantRes:  `{"error":"Stock not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockClient.EXPECT().
					Quote(gomock.Any(), "NOPE").
					Return(models.StockQuote{}, common.ErrStockNotFound)
			},
		},
		{
			name:      "upstream failure",
			urlCalled: "/stock/AAPL",
			expectation: Expectation{
				wantRes:  `{"error":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockClient.EXPECT().
					Quote(gomock.Any(), "AAPL").
					Return(models.StockQuote{}, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
