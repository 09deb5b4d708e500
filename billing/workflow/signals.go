package workflow

const (
	// Signal names
	DecisionSignalName = "invoice-decision"
)

// Decision outcomes carried by DecisionSignal.
const (
	DecisionApproved  = "approved"
	DecisionCancelled = "cancelled"
)

// DecisionSignal tells the approval-window workflow that a decision was made
// on the invoice. The API layer has already performed the state transition;
// the signal only stops the expiry timer.
type DecisionSignal struct {
	Outcome   string `json:"outcome"`
	Reason    string `json:"reason"`
	DecidedBy string `json:"decided_by"`
}
