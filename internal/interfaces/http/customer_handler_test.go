package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/domain/entity"
)

func individualBody() dto.CustomerRequest {
	return dto.CustomerRequest{
		CustomerType:      entity.CustomerIndividual,
		FullName:          "Ahmed Al Mansoori",
		EmiratesID:        "784-1990-1234567-1",
		PassportNumber:    "N1234567",
		Nationality:       "UAE",
		DOB:               "1990-05-15",
		Gender:            "Male",
		Email:             "ahmed@example.ae",
		Mobile:            "+971501234567",
		Address:           "Villa 12, Al Wasl Road",
		Emirate:           "Dubai",
		POBox:             "118273",
		PreferredLanguage: "English",
		PaymentMethods:    []entity.PaymentMethod{{Type: "Cash"}, {Type: "Card", Details: "Visa ending 4242"}},
		KYCVerified:       true,
	}
}

func corporateBody() dto.CustomerRequest {
	return dto.CustomerRequest{
		CustomerType:      entity.CustomerCorporate,
		CompanyName:       "Gulf Trading LLC",
		TradeLicense:      "CN-1234567",
		TRNNumber:         "100123456789012",
		Email:             "accounts@gulftrading.ae",
		Mobile:            "+971521234567",
		Address:           "Office 804, Business Bay",
		Emirate:           "Dubai",
		PreferredLanguage: "Arabic",
	}
}

func TestCustomers_RequireAuth(t *testing.T) {
	env := newTestEnv()
	resp := doJSON(t, env.app, http.MethodGet, "/api/customers/", nil, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCustomers_CreateIndividual_RoundTrip(t *testing.T) {
	env := newTestEnv()
	in := individualBody()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", in, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.CustomerResponse](t, resp)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, in.FullName, out.FullName)
	assert.Equal(t, in.EmiratesID, out.EmiratesID)
	assert.Equal(t, in.DOB, out.DOB)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.Mobile, out.Mobile)
	assert.Equal(t, in.PaymentMethods, out.PaymentMethods)
	assert.True(t, out.KYCVerified)
	assert.False(t, out.CreatedAt.IsZero())

	// Corporate fields are absent on an Individual record.
	assert.Empty(t, out.CompanyName)
	assert.Empty(t, out.TradeLicense)
}

func TestCustomers_CreateMissingVariantField_Returns400(t *testing.T) {
	env := newTestEnv()
	in := individualBody()
	in.FullName = ""

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", in, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "fullName is required", out.Message)

	// Nothing persisted.
	list, err := env.customers.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomers_DuplicateEmail_Returns409(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", individualBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	second := corporateBody()
	second.Email = individualBody().Email
	resp = doJSON(t, env.app, http.MethodPost, "/api/customers/", second, true)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Email already exists", out.Message)

	list, err := env.customers.List("")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCustomers_ListNewestFirst(t *testing.T) {
	env := newTestEnv()

	first := individualBody()
	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", first, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	second := corporateBody()
	resp = doJSON(t, env.app, http.MethodPost, "/api/customers/", second, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/api/customers/", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.CustomerResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, second.CompanyName, list[0].CompanyName)
	assert.Equal(t, first.FullName, list[1].FullName)
}

func TestCustomers_Search(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", individualBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, env.app, http.MethodPost, "/api/customers/", corporateBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/api/customers/?search=gulf+trading", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.CustomerResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Gulf Trading LLC", list[0].CompanyName)
}

func TestCustomers_UpdateUnknownID_Returns404_NoSideEffect(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPut, "/api/customers/does-not-exist", individualBody(), true)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Customer not found", out.Message)

	list, err := env.customers.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Switching customerType on replace must blank the previous variant's fields.
func TestCustomers_UpdateSwitchesType_ClearsOldVariant(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", individualBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.CustomerResponse](t, resp)

	replacement := corporateBody()
	replacement.FullName = "stale value that must not survive"
	resp = doJSON(t, env.app, http.MethodPut, "/api/customers/"+created.ID, replacement, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, entity.CustomerCorporate, out.CustomerType)
	assert.Equal(t, replacement.CompanyName, out.CompanyName)
	assert.Empty(t, out.FullName)
	assert.Empty(t, out.EmiratesID)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
}

func TestCustomers_DeleteThenGone(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", individualBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.CustomerResponse](t, resp)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/customers/"+created.ID, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	msg := decodeBody[dto.MessageResponse](t, resp)
	assert.Equal(t, "Customer removed", msg.Message)

	resp = doJSON(t, env.app, http.MethodGet, "/api/customers/", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.CustomerResponse](t, resp)
	assert.Empty(t, list)
}

func TestCustomers_DeleteUnknownID_Returns404(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodDelete, "/api/customers/missing", nil, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomers_Stats(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(t, env.app, http.MethodPost, "/api/customers/", individualBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, env.app, http.MethodPost, "/api/customers/", corporateBody(), true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/api/customers/stats", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody[dto.CustomerStatsResponse](t, resp)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByType[entity.CustomerIndividual])
	assert.Equal(t, 1, stats.ByType[entity.CustomerCorporate])
	assert.Equal(t, 2, stats.ByEmirate["Dubai"])
	assert.Equal(t, 1, stats.KYC.Verified)
	assert.Equal(t, 1, stats.KYC.Pending)
	require.Len(t, stats.Recent, 2)
	assert.Equal(t, "Gulf Trading LLC", stats.Recent[0].Name)
}
