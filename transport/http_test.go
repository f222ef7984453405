package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	catalogmocks "github.com/muhammadheryan/humidor-club/mocks/application/catalog"
	humidormocks "github.com/muhammadheryan/humidor-club/mocks/application/humidor"
	listingmocks "github.com/muhammadheryan/humidor-club/mocks/application/listing"
	usermocks "github.com/muhammadheryan/humidor-club/mocks/application/user"
	valuationmocks "github.com/muhammadheryan/humidor-club/mocks/application/valuation"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/muhammadheryan/humidor-club/transport"
	cerr "github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const internalKey = "internal-secret"

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	userApp      *usermocks.UserApp
	humidorApp   *humidormocks.HumidorApp
	listingApp   *listingmocks.ListingApp
	catalogApp   *catalogmocks.CatalogApp
	valuationApp *valuationmocks.ValuationApp
}

func newFields(t *testing.T) fields {
	return fields{
		userApp:      usermocks.NewUserApp(t),
		humidorApp:   humidormocks.NewHumidorApp(t),
		listingApp:   listingmocks.NewListingApp(t),
		catalogApp:   catalogmocks.NewCatalogApp(t),
		valuationApp: valuationmocks.NewValuationApp(t),
	}
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		UserApp:      f.userApp,
		HumidorApp:   f.humidorApp,
		ListingApp:   f.listingApp,
		CatalogApp:   f.catalogApp,
		ValuationApp: f.valuationApp,
	}, internalKey)
}

func TestTransport(t *testing.T) {
	type args struct {
		method string
		path   string
		body   string
		token  string
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "protected route without token is rejected before the app",
			args:       args{method: http.MethodGet, path: "/humidor"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name: "invalid token",
			args: args{method: http.MethodGet, path: "/humidor", token: "bad"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "bad").Return(uint64(0), errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name: "authenticated user reaches the app",
			args: args{method: http.MethodGet, path: "/humidor", token: "good"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				f.humidorApp.On("ListHumidor", mock.Anything, uint64(7)).Return([]model.HumidorItemDetail{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "smoke beyond quantity maps to conflict",
			args: args{method: http.MethodPost, path: "/humidor/3/smoke", body: `{"count": 11}`, token: "good"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				f.humidorApp.On("SmokeCigars", mock.Anything, uint64(7), uint64(3), &model.SmokeRequest{Count: 11}).
					Return(nil, cerr.SetCustomErrorMessage(constant.ErrInsufficientQuantity, "only 10 cigars left in this humidor item")).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "0008",
		},
		{
			name: "smoke count below one fails validation",
			args: args{method: http.MethodPost, path: "/humidor/3/smoke", body: `{"count": 0}`, token: "good"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "malformed body",
			args: args{method: http.MethodPut, path: "/humidor/3/availability", body: `{`, token: "good"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "listings are public",
			args: args{method: http.MethodGet, path: "/listings?type=WTS&page=2"},
			mockCall: func(f fields) {
				f.listingApp.On("ListListings", mock.Anything, &model.ListingFilter{Type: constant.ListingTypeWTS, Page: 2}).
					Return(&model.ListingListResponse{Items: []model.Listing{}, Page: 2, PerPage: 10}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown listing type",
			args:       args{method: http.MethodGet, path: "/listings?type=WTF"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name:       "creating a listing needs a session",
			args:       args{method: http.MethodPost, path: "/listings", body: `{}`},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "0004",
		},
		{
			name: "create listing",
			args: args{method: http.MethodPost, path: "/listings", token: "good",
				body: `{"type":"WTB","status":"ACTIVE","title":"Looking for Opus X","description":"any vitola","qty":2}`},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				f.listingApp.On("CreateListing", mock.Anything, uint64(7), mock.MatchedBy(func(r *model.CreateListingRequest) bool {
					return r.Type == constant.ListingTypeWTB && r.Qty == 2
				})).Return(&model.Listing{ID: 1}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "withdraw foreign listing",
			args: args{method: http.MethodDelete, path: "/listings/5", token: "good"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "good").Return(uint64(7), nil).Once()
				f.listingApp.On("WithdrawListing", mock.Anything, uint64(7), uint64(5)).Return(nil, cerr.SetCustomError(constant.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "0007",
		},
		{
			name: "valuation with reference date",
			args: args{method: http.MethodGet, path: "/cigars/9/valuation?as_of=2025-05-01"},
			mockCall: func(f fields) {
				f.valuationApp.On("GetCigarValuation", mock.Anything, uint64(9), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)).
					Return(&model.CigarValuation{CigarID: 9}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valuation with bad date",
			args:       args{method: http.MethodGet, path: "/cigars/9/valuation?as_of=May"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
		},
		{
			name: "unexpected errors surface as internal",
			args: args{method: http.MethodGet, path: "/cigars/9"},
			mockCall: func(f fields) {
				f.catalogApp.On("GetCigar", mock.Anything, uint64(9)).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "0001",
		},
		{
			name: "sign-in request is public",
			args: args{method: http.MethodPost, path: "/auth/magic-link", body: `{"email":"ana@example.com"}`},
			mockCall: func(f fields) {
				f.userApp.On("RequestMagicLink", mock.Anything, &model.MagicLinkRequest{Email: "ana@example.com"}).
					Return(&model.MagicLinkResponse{Message: "ok"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "internal route without key",
			args:       args{method: http.MethodGet, path: "/internal/v1/dev/magic-link?email=a@b.co"},
			wantStatus: http.StatusForbidden,
			wantCode:   "0007",
		},
		{
			name: "internal route with key",
			args: args{method: http.MethodGet, path: "/internal/v1/dev/magic-link?email=a@b.co", token: internalKey},
			mockCall: func(f fields) {
				f.userApp.On("GetDevMagicLink", mock.Anything, "a@b.co").
					Return(&model.DevMagicLinkResponse{Email: "a@b.co", Link: "http://x"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "health",
			args:       args{method: http.MethodGet, path: "/health"},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			req := httptest.NewRequest(tt.args.method, tt.args.path, strings.NewReader(tt.args.body))
			if tt.args.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.args.token)
			}
			rec := httptest.NewRecorder()
			f.handler().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				var body transport.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestTransport_InternalRoutesLockedWithoutKey(t *testing.T) {
	f := newFields(t)
	h := transport.NewTransport(&transport.RestHandler{UserApp: f.userApp}, "")

	req := httptest.NewRequest(http.MethodGet, "/internal/v1/dev/magic-link?email=a@b.co", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
