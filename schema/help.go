package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
)

const (
	HelpRequestTable = "help_requests"
	ResponseTable    = "responses"
)

// help request lifecycle states
const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusFulfilled  = "fulfilled"
	RequestStatusCancelled  = "cancelled"
)

// help request categories
const (
	CategoryMedical   = "medical"
	CategoryFood      = "food"
	CategoryWater     = "water"
	CategoryShelter   = "shelter"
	CategoryTransport = "transport"
	CategorySupplies  = "supplies"
	CategoryOther     = "other"
)

// urgency levels, ordered critical > high > medium > low
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// RequestCategories lists all accepted categories in display order.
var RequestCategories = []string{
	CategoryMedical,
	CategoryFood,
	CategoryWater,
	CategoryShelter,
	CategoryTransport,
	CategorySupplies,
	CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range RequestCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidUrgency(urgency string) bool {
	return UrgencyRank(urgency) > 0
}

// UrgencyRank maps an urgency level to its sort weight. Unknown values
// rank below low.
func UrgencyRank(urgency string) int {
	switch urgency {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

// HelpRequest is a victim-submitted record describing a need, its location
// and its lifecycle state. AIClassification is an opaque payload returned by
// the external classifier and stored verbatim; it is never interpreted here.
type HelpRequest struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Requester        string         `json:"requester"`
	Responder        string         `json:"responder"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Urgency          string         `json:"urgency"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	Address          string         `json:"address"`
	Status           string         `json:"status" sql:"default:'pending'"`
	AIClassification postgres.Jsonb `json:"ai_classification"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
