package services_test

import (
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	mockAdminUsers "github.com/payportal/go-selfservice/internal/clients/adminusers/mock"
	mockConnector "github.com/payportal/go-selfservice/internal/clients/connector/mock"
	mockLedger "github.com/payportal/go-selfservice/internal/clients/ledger/mock"
	mockProducts "github.com/payportal/go-selfservice/internal/clients/products/mock"
	mockZendesk "github.com/payportal/go-selfservice/internal/clients/zendesk/mock"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl       *gomock.Controller
	mockLedger     *mockLedger.MockClient
	mockConnector  *mockConnector.MockClient
	mockAdminUsers *mockAdminUsers.MockClient
	mockZendesk    *mockZendesk.MockClient
	mockProducts   *mockProducts.MockClient

	services *services.Services
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	helper := testServiceHelper{
		mockCtrl:       mockCtrl,
		mockLedger:     mockLedger.NewMockClient(mockCtrl),
		mockConnector:  mockConnector.NewMockClient(mockCtrl),
		mockAdminUsers: mockAdminUsers.NewMockClient(mockCtrl),
		mockZendesk:    mockZendesk.NewMockClient(mockCtrl),
		mockProducts:   mockProducts.NewMockClient(mockCtrl),
	}

	helper.services = services.New(
		config.Config{},
		helper.mockLedger,
		helper.mockConnector,
		helper.mockAdminUsers,
		helper.mockZendesk,
		helper.mockProducts,
		nil,
	)

	return helper
}
