package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/spatocode/capperhub/docs"
	subscriptionhandlers "github.com/spatocode/capperhub/internal/handlers/subscription"
	wagerhandlers "github.com/spatocode/capperhub/internal/handlers/wager"
	wallethandlers "github.com/spatocode/capperhub/internal/handlers/wallet"
	"github.com/spatocode/capperhub/internal/service"
	"github.com/spatocode/capperhub/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type WalletHandler interface {
	CreateWallet(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
	PaymentWebhook(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	PlaceWager(w http.ResponseWriter, r *http.Request)
	MatchWager(w http.ResponseWriter, r *http.Request)
	AcceptInvitation(w http.ResponseWriter, r *http.Request)
	SettleWager(w http.ResponseWriter, r *http.Request)
	VoidWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
	GetInvitations(w http.ResponseWriter, r *http.Request)
}

type SubscriptionHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
	Unsubscribe(w http.ResponseWriter, r *http.Request)
	GetSubscriptions(w http.ResponseWriter, r *http.Request)
	GetSubscribers(w http.ResponseWriter, r *http.Request)
	UpdatePricing(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler       WalletHandler
	WagerHandler        WagerHandler
	SubscriptionHandler SubscriptionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WalletHandler:       wallethandlers.New(s.WalletService),
		WagerHandler:        wagerhandlers.New(s.WagerService),
		SubscriptionHandler: subscriptionhandlers.New(s.SubscriptionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/api/webhook/payment", h.WalletHandler.PaymentWebhook)
	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Post("/", h.WalletHandler.CreateWallet)
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetLedger)
			})
			r.Route("/wagers", func(r chi.Router) {
				r.Post("/", h.WagerHandler.PlaceWager)
				r.Get("/", h.WagerHandler.GetWagers)
				r.Post("/{wagerID}/match", h.WagerHandler.MatchWager)
				r.Group(func(r chi.Router) {
					r.Use(auth.OperatorMiddleware)
					r.Post("/{wagerID}/settle", h.WagerHandler.SettleWager)
					r.Post("/{wagerID}/void", h.WagerHandler.VoidWager)
				})
			})
			r.Route("/invitations", func(r chi.Router) {
				r.Get("/", h.WagerHandler.GetInvitations)
				r.Post("/{invitationID}/accept", h.WagerHandler.AcceptInvitation)
			})
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", h.SubscriptionHandler.Subscribe)
				r.Get("/", h.SubscriptionHandler.GetSubscriptions)
				r.Post("/unsubscribe", h.SubscriptionHandler.Unsubscribe)
			})
			r.Get("/subscribers", h.SubscriptionHandler.GetSubscribers)
			r.Post("/pricing", h.SubscriptionHandler.UpdatePricing)
		})
	})

	return r
}
