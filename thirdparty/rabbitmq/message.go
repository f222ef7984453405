package rabbitmq

import (
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
)

const (
	MailExchange      = "humidor.mail"
	MagicLinkQueue    = "magic_link_mail"
	MagicLinkRouteKey = "magic_link"

	// MarketplaceExchange is a topic exchange; routing keys are the event names.
	MarketplaceExchange = "humidor.marketplace"
)

const (
	EventListingCreated       = "listing.created"
	EventListingStatusChanged = "listing.status_changed"
)

// MagicLinkMessage asks the mailer to deliver a sign-in link.
type MagicLinkMessage struct {
	Email     string    `json:"email"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ListingEvent struct {
	Event          string                 `json:"event"`
	ListingID      uint64                 `json:"listing_id"`
	UserID         uint64                 `json:"user_id"`
	Type           constant.ListingType   `json:"type"`
	Status         constant.ListingStatus `json:"status"`
	PreviousStatus constant.ListingStatus `json:"previous_status,omitempty"`
	CigarID        *uint64                `json:"cigar_id,omitempty"`
	Qty            int64                  `json:"qty"`
	PriceCents     *int64                 `json:"price_cents,omitempty"`
	OccurredAt     time.Time              `json:"occurred_at"`
}
