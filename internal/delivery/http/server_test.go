package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petverse/config"
	httpmiddleware "petverse/internal/delivery/http/middleware"
	"petverse/internal/delivery/http/router"
	"petverse/internal/delivery/http/router/handler"
	"petverse/internal/domain/constants"
	"petverse/internal/domain/entity"
	"petverse/internal/domain/service"
	mockService "petverse/internal/mocks/service"
	mockUsecase "petverse/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// serverFixtures holds all test dependencies for the assembled HTTP stack.
type serverFixtures struct {
	echo      *echo.Echo
	orderUC   *mockUsecase.MockOrderUsecase
	tokenSvc  *mockService.MockTokenService
	addressUC *mockUsecase.MockAddressUsecase
}

func testRouterParams(t *testing.T, tokenSvc service.TokenService) (router.RouterParams, *mockUsecase.MockOrderUsecase, *mockUsecase.MockAddressUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	return router.RouterParams{
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			CheckoutUC: checkoutUC,
			OrderUC:    orderUC,
			Logger:     logger,
		}),
		GatewayHandler: handler.NewGatewayHandler(handler.GatewayHandlerParams{CheckoutUC: checkoutUC}),
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc),
		Logger:         logger,
	}, orderUC, addressUC
}

func createTestServer(t *testing.T, withAuth bool) serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.AllowOrigins = []string{"https://shop.example.com"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var tokenSvc *mockService.MockTokenService
	var svc service.TokenService
	if withAuth {
		tokenSvc = mockService.NewMockTokenService(t)
		svc = tokenSvc
	}

	params, orderUC, addressUC := testRouterParams(t, svc)
	e := NewEcho(cfg, logger)
	router.NewRouter(params).RegisterRoutes(e)

	return serverFixtures{
		echo:      e,
		orderUC:   orderUC,
		tokenSvc:  tokenSvc,
		addressUC: addressUC,
	}
}

func (f serverFixtures) do(method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	fx := createTestServer(t, false)

	rec := fx.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = fx.do(http.MethodGet, "/health", map[string]string{echo.HeaderXRequestID: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_CORSPreflight(t *testing.T) {
	fx := createTestServer(t, false)

	rec := fx.do(http.MethodOptions, "/orders/create", map[string]string{
		echo.HeaderOrigin:                     "https://shop.example.com",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	fx := createTestServer(t, false)

	rec := fx.do(http.MethodGet, "/nope", map[string]string{echo.HeaderXRequestID: "req-7"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"code":"HTTP_ERROR","message":"Not Found","error":{"code":"HTTP_ERROR"},"requestId":"req-7"}`,
		rec.Body.String())
}

func TestServer_AdminWithoutSecretIsOpen(t *testing.T) {
	fx := createTestServer(t, false)

	fx.orderUC.EXPECT().
		ListAllOrders(mock.Anything).
		Return([]*entity.Order{}, nil).
		Once()

	rec := fx.do(http.MethodGet, "/admin/orders", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_AdminAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(fx serverFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(fx serverFixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "customer token",
			header: "Bearer customer",
			setup: func(fx serverFixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("customer").Return(&service.Claims{
					Roles:            []string{"customer"},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
				}, nil).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:   "admin token",
			header: "Bearer admin",
			setup: func(fx serverFixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("admin").Return(&service.Claims{
					Roles:            []string{constants.RoleAdmin},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
				}, nil).Once()
				fx.orderUC.EXPECT().ListAllOrders(mock.Anything).Return([]*entity.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t, true)
			if tt.setup != nil {
				tt.setup(fx)
			}

			header := map[string]string{}
			if tt.header != "" {
				header[echo.HeaderAuthorization] = tt.header
			}

			rec := fx.do(http.MethodGet, "/admin/orders", header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			}
		})
	}
}

func TestServer_PublicRoutesSkipAuthentication(t *testing.T) {
	fx := createTestServer(t, true)

	fx.addressUC.EXPECT().
		ListAddresses(mock.Anything, "user-1").
		Return([]*entity.Address{}, nil).
		Once()

	rec := fx.do(http.MethodGet, "/user/addresses?userId=user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_RegistersShutdownHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	params, _, _ := testRouterParams(t, nil)

	srv, err := NewServer(ServerParams{
		Lc:           lc,
		Cfg:          &config.Config{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		RouterParams: params,
	})
	require.NoError(t, err)
	require.NotNil(t, srv)

	lc.RequireStart()
	lc.RequireStop()
}
