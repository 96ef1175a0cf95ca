package models

// Lead statuses. pending-review is the admin-mediated pre-funnel state;
// rejected is its tombstone outcome. converted, lost and rejected are
// terminal.
const (
	LeadStatusPendingReview  = "pending-review"
	LeadStatusNew            = "new"
	LeadStatusContacted      = "contacted"
	LeadStatusQualified      = "qualified"
	LeadStatusAppointmentSet = "appointment-set"
	LeadStatusConverted      = "converted"
	LeadStatusLost           = "lost"
	LeadStatusRejected       = "rejected"
)

// Lead sources.
const (
	LeadSourceLandingPage    = "Landing Page"
	LeadSourceAIReceptionist = "AI Receptionist"
	LeadSourceLeadGen        = "Lead Gen Campaign"
)

// funnelOrder positions each in-funnel status. Forward moves (including
// skips) are allowed; backward moves are not.
var funnelOrder = map[string]int{
	LeadStatusNew:            1,
	LeadStatusContacted:      2,
	LeadStatusQualified:      3,
	LeadStatusAppointmentSet: 4,
	LeadStatusConverted:      5,
}

// IsTerminalLeadStatus reports whether the status ends the lead's lifecycle.
func IsTerminalLeadStatus(status string) bool {
	switch status {
	case LeadStatusConverted, LeadStatusLost, LeadStatusRejected:
		return true
	}
	return false
}

// CanTransitionLead reports whether a lead may move from one status to
// another.
//
// Rules:
//   - pending-review only leaves via approval (new) or rejection (rejected)
//   - terminal statuses never leave
//   - lost is reachable from any in-funnel status
//   - in-funnel moves must go forward (skips allowed)
func CanTransitionLead(from, to string) bool {
	if from == to {
		return false
	}
	if IsTerminalLeadStatus(from) {
		return false
	}

	if from == LeadStatusPendingReview {
		return to == LeadStatusNew || to == LeadStatusRejected
	}

	fromPos, inFunnel := funnelOrder[from]
	if !inFunnel {
		return false
	}

	if to == LeadStatusLost {
		return true
	}

	toPos, ok := funnelOrder[to]
	return ok && toPos > fromPos
}

// ValidLeadStatus reports whether the value names a known status.
func ValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusPendingReview, LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusAppointmentSet, LeadStatusConverted, LeadStatusLost, LeadStatusRejected:
		return true
	}
	return false
}
