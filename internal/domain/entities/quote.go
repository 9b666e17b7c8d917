package entities

// QuoteStage represents the pipeline stage of a quote.
//
// Domain notes:
//   - Stages form a fixed ordered pipeline; kanban columns follow this order.
//   - Moving a quote to Closed Won / Closed Lost is expected to also settle its
//     Status (approved/rejected). That derivation is owned by the caller that
//     performs the stage change, not by the store.

type QuoteStage string

const (
	QuoteStageDiscovery     QuoteStage = "Discovery"
	QuoteStageQualification QuoteStage = "Qualification"
	QuoteStageProposal      QuoteStage = "Proposal"
	QuoteStageNegotiation   QuoteStage = "Negotiation"
	QuoteStageClosedWon     QuoteStage = "Closed Won"
	QuoteStageClosedLost    QuoteStage = "Closed Lost"
)

// QuoteStages is the fixed pipeline order used by stage grouping.
var QuoteStages = []QuoteStage{
	QuoteStageDiscovery,
	QuoteStageQualification,
	QuoteStageProposal,
	QuoteStageNegotiation,
	QuoteStageClosedWon,
	QuoteStageClosedLost,
}

// QuoteStatus is the approval tri-state derived from the quote lifecycle.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "Pending"
	QuoteStatusApproved QuoteStatus = "Approved"
	QuoteStatusRejected QuoteStatus = "Rejected"
)

// QuoteContact is the customer contact embedded in a quote.
type QuoteContact struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Avatar  string `json:"avatar"`
}

// QuoteLineItem is one priced line of a quote.
type QuoteLineItem struct {
	ID          string  `json:"id"`
	Product     string  `json:"product"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// ActivityType classifies an activity history entry.

type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
)

// QuoteActivity is one entry of a quote's activity history.
type QuoteActivity struct {
	ID      string       `json:"id"`
	Type    ActivityType `json:"type"`
	User    string       `json:"user"`
	Date    string       `json:"date"`
	Details string       `json:"details"`
}

// Quote is a sales quote owned by the quote store.
//
// Storage model:
//   - the whole quote collection is serialized as a single JSON array under
//     the quotes storage key; there is no per-record storage item.
//
// Monetary representation:
//   - Amount is the quote total as a number. The HTTP boundary accepts both
//     string and numeric amounts and converts before the record reaches here.
type Quote struct {
	ID              string          `json:"id"`
	Customer        string          `json:"customer"`
	Amount          float64         `json:"amount"`
	Owner           string          `json:"owner"`
	Stage           QuoteStage      `json:"stage"`
	Status          QuoteStatus     `json:"status"`
	Created         string          `json:"created"`
	Contact         QuoteContact    `json:"contact"`
	LineItems       []QuoteLineItem `json:"lineItems"`
	ActivityHistory []QuoteActivity `json:"activityHistory"`
}

// QuotePatch is a partial quote used by add and update operations. Only the
// top-level fields present (non-nil) participate in the merge; nested values
// replace the existing value wholesale.
type QuotePatch struct {
	ID              string           `json:"id"`
	Customer        *string          `json:"customer"`
	Amount          *float64         `json:"amount"`
	Owner           *string          `json:"owner"`
	Stage           *QuoteStage      `json:"stage"`
	Status          *QuoteStatus     `json:"status"`
	Created         *string          `json:"created"`
	Contact         *QuoteContact    `json:"contact"`
	LineItems       *[]QuoteLineItem `json:"lineItems"`
	ActivityHistory *[]QuoteActivity `json:"activityHistory"`
}

// ValidQuoteStage reports whether s is a member of the fixed pipeline.
func ValidQuoteStage(s QuoteStage) bool {
	for _, st := range QuoteStages {
		if st == s {
			return true
		}
	}
	return false
}
