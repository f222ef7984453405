package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	catalogapp "github.com/muhammadheryan/humidor-club/application/catalog"
	humidorapp "github.com/muhammadheryan/humidor-club/application/humidor"
	listingapp "github.com/muhammadheryan/humidor-club/application/listing"
	userapp "github.com/muhammadheryan/humidor-club/application/user"
	valuationapp "github.com/muhammadheryan/humidor-club/application/valuation"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/muhammadheryan/humidor-club/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	HumidorApp   humidorapp.HumidorApp
	ListingApp   listingapp.ListingApp
	CatalogApp   catalogapp.CatalogApp
	ValuationApp valuationapp.ValuationApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// ops
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// auth
	mux.HandleFunc("/auth/magic-link", rh.RequestMagicLink).Methods(http.MethodPost)
	mux.HandleFunc("/auth/verify", rh.VerifyMagicLink).Methods(http.MethodPost)

	// humidor
	mux.HandleFunc("/humidor", rh.ListHumidor).Methods(http.MethodGet)
	mux.HandleFunc("/humidor", rh.AddToHumidor).Methods(http.MethodPost)
	mux.HandleFunc("/humidor/stats", rh.GetHumidorStats).Methods(http.MethodGet)
	mux.HandleFunc("/humidor/toggle", rh.ToggleHumidorMembership).Methods(http.MethodPost)
	mux.HandleFunc("/humidor/{id:[0-9]+}", rh.GetHumidorItem).Methods(http.MethodGet)
	mux.HandleFunc("/humidor/{id:[0-9]+}/smoke", rh.SmokeCigars).Methods(http.MethodPost)
	mux.HandleFunc("/humidor/{id:[0-9]+}/availability", rh.SetMarketplaceAvailability).Methods(http.MethodPut)

	// marketplace
	mux.HandleFunc("/listings", rh.ListListings).Methods(http.MethodGet)
	mux.HandleFunc("/listings", rh.CreateListing).Methods(http.MethodPost)
	mux.HandleFunc("/listings/{id:[0-9]+}", rh.ViewListing).Methods(http.MethodGet)
	mux.HandleFunc("/listings/{id:[0-9]+}", rh.UpdateListing).Methods(http.MethodPatch)
	mux.HandleFunc("/listings/{id:[0-9]+}", rh.WithdrawListing).Methods(http.MethodDelete)

	// catalog
	mux.HandleFunc("/cigars", rh.SearchCigars).Methods(http.MethodGet)
	mux.HandleFunc("/cigars/resolve", rh.ResolveCigar).Methods(http.MethodPost)
	mux.HandleFunc("/cigars/{id:[0-9]+}", rh.GetCigar).Methods(http.MethodGet)
	mux.HandleFunc("/cigars/{id:[0-9]+}/valuation", rh.GetCigarValuation).Methods(http.MethodGet)

	// internal routes, API key only
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/dev/magic-link", rh.GetDevMagicLink).Methods(http.MethodGet)

	// middleware
	mux.Use(metrics.Middleware())
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Health handler
// @Summary Liveness check
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// RequestMagicLink handler
// @Summary Request a sign-in link
// @Description Sends a one-time sign-in link to the given email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.MagicLinkRequest true "Magic Link Request"
// @Success 200 {object} model.MagicLinkResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/magic-link [post]
func (s *RestHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req model.MagicLinkRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.RequestMagicLink(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyMagicLink handler
// @Summary Exchange a sign-in link for a session
// @Description Consumes the link token and returns a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyMagicLinkRequest true "Verify Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/verify [post]
func (s *RestHandler) VerifyMagicLink(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyMagicLinkRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.VerifyMagicLink(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetDevMagicLink handler
// @Summary Latest sign-in link issued for an email (development only)
// @Tags Internal
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} model.DevMagicLinkResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /internal/v1/dev/magic-link [get]
func (s *RestHandler) GetDevMagicLink(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetDevMagicLink(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
