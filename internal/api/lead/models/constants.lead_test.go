package models

import (
	"testing"
)

func TestCanTransitionLead_PendingReview(t *testing.T) {
	if !CanTransitionLead(LeadStatusPendingReview, LeadStatusNew) {
		t.Error("pending-review -> new must be allowed (approval)")
	}
	if !CanTransitionLead(LeadStatusPendingReview, LeadStatusRejected) {
		t.Error("pending-review -> rejected must be allowed (rejection)")
	}
	for _, to := range []string{LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost} {
		if CanTransitionLead(LeadStatusPendingReview, to) {
			t.Errorf("pending-review -> %s must be denied", to)
		}
	}
}

func TestCanTransitionLead_ForwardOnly(t *testing.T) {
	if !CanTransitionLead(LeadStatusNew, LeadStatusContacted) {
		t.Error("new -> contacted must be allowed")
	}
	if !CanTransitionLead(LeadStatusNew, LeadStatusQualified) {
		t.Error("forward skips must be allowed")
	}
	if !CanTransitionLead(LeadStatusContacted, LeadStatusConverted) {
		t.Error("contacted -> converted must be allowed")
	}
	if CanTransitionLead(LeadStatusQualified, LeadStatusContacted) {
		t.Error("backward moves must be denied")
	}
	if CanTransitionLead(LeadStatusConverted, LeadStatusContacted) {
		t.Error("converted is terminal")
	}
}

func TestCanTransitionLead_Lost(t *testing.T) {
	for _, from := range []string{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusAppointmentSet} {
		if !CanTransitionLead(from, LeadStatusLost) {
			t.Errorf("%s -> lost must be allowed", from)
		}
	}
	if CanTransitionLead(LeadStatusLost, LeadStatusNew) {
		t.Error("lost is terminal")
	}
	if CanTransitionLead(LeadStatusRejected, LeadStatusNew) {
		t.Error("rejected is terminal")
	}
}

func TestCanTransitionLead_SelfAndUnknown(t *testing.T) {
	if CanTransitionLead(LeadStatusNew, LeadStatusNew) {
		t.Error("self transitions must be denied")
	}
	if CanTransitionLead("bogus", LeadStatusContacted) {
		t.Error("unknown source status must be denied")
	}
	if CanTransitionLead(LeadStatusNew, "bogus") {
		t.Error("unknown target status must be denied")
	}
}

func TestValidLeadStatus(t *testing.T) {
	for _, s := range []string{
		LeadStatusPendingReview, LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusAppointmentSet, LeadStatusConverted, LeadStatusLost, LeadStatusRejected,
	} {
		if !ValidLeadStatus(s) {
			t.Errorf("%s must be a valid status", s)
		}
	}
	if ValidLeadStatus("archived") {
		t.Error("archived is not a known status")
	}
}
