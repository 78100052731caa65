package transactions

import (
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/services/mock"
)

type testTransactionsHelper struct {
	router         *echo.Echo
	mockCtrl       *gomock.Controller
	mockTrxService *mock.MockTransactionService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func transactionsTestHelper(t *testing.T) testTransactionsHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockTrxService := mock.NewMockTransactionService(mockCtrl)

	app := echo.New()
	New(app.Group("/v1"), mockTrxService)

	return testTransactionsHelper{
		router:         app,
		mockCtrl:       mockCtrl,
		mockTrxService: mockTrxService,
	}
}
