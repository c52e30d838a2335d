package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gulfwms/wms-api/internal/application/auth"
	"github.com/gulfwms/wms-api/internal/application/report"
	"github.com/gulfwms/wms-api/internal/application/usecase"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	apphttp "github.com/gulfwms/wms-api/internal/interfaces/http"
	pkgjwt "github.com/gulfwms/wms-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "ops.tester"
	testIssuer    = "gulf-wms-test"
	testExpMin    = 60
)

// fakeStockPDF stands in for the Maroto generator in handler tests.
type fakeStockPDF struct {
	lastItems []*entity.InventoryItem
}

func (g *fakeStockPDF) GenerateStockReport(_ time.Time, items []*entity.InventoryItem) ([]byte, error) {
	g.lastItems = items
	return []byte("%PDF-1.7 fake"), nil
}

// testEnv bundles the app with its fake stores so tests can assert on state
// behind the HTTP surface.
type testEnv struct {
	app        *fiber.App
	customers  *fakeCustomerRepo
	suppliers  *fakeSupplierRepo
	warehouses *fakeWarehouseRepo
	items      *fakeItemRepo
	users      *fakeUserRepo
	pdf        *fakeStockPDF
}

// newTestEnv wires the full router against in-memory stores.
func newTestEnv() *testEnv {
	env := &testEnv{
		customers:  newFakeCustomerRepo(),
		suppliers:  newFakeSupplierRepo(),
		warehouses: newFakeWarehouseRepo(),
		items:      newFakeItemRepo(),
		users:      newFakeUserRepo(),
		pdf:        &fakeStockPDF{},
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:  usecase.NewCustomerUseCase(env.customers),
		SupplierUC:  usecase.NewSupplierUseCase(env.suppliers),
		WarehouseUC: usecase.NewWarehouseUseCase(env.warehouses),
		ItemUC:      usecase.NewItemUseCase(env.items, env.warehouses, env.suppliers),
		StockReport: report.NewStockReportUseCase(env.items, env.pdf),
		AuthUC: auth.NewAuthUseCase(env.users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	env.app = app
	return env
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON issues a request with an optional JSON body and bearer auth.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, authed bool) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", bearerToken(t))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
