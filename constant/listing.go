package constant

type ListingType string

const (
	ListingTypeWTS ListingType = "WTS"
	ListingTypeWTB ListingType = "WTB"
	ListingTypeWTT ListingType = "WTT"
)

type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "DRAFT"
	ListingStatusActive    ListingStatus = "ACTIVE"
	ListingStatusPending   ListingStatus = "PENDING"
	ListingStatusSold      ListingStatus = "SOLD"
	ListingStatusWithdrawn ListingStatus = "WITHDRAWN"
	ListingStatusFrozen    ListingStatus = "FROZEN"
)
