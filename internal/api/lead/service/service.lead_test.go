package leadsvc

import (
	"testing"

	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
)

func sampleLeads() []leadmodels.Lead {
	return []leadmodels.Lead{
		{Name: "a", Status: leadmodels.LeadStatusNew},
		{Name: "b", Status: leadmodels.LeadStatusContacted},
		{Name: "c", Status: leadmodels.LeadStatusNew},
		{Name: "d", Status: leadmodels.LeadStatusConverted},
	}
}

func TestFilterByStatus(t *testing.T) {
	out := FilterByStatus(sampleLeads(), leadmodels.LeadStatusNew)
	if len(out) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(out))
	}
	for _, lead := range out {
		if lead.Status != leadmodels.LeadStatusNew {
			t.Errorf("lead %s has status %s", lead.Name, lead.Status)
		}
	}
}

func TestFilterByStatus_AllPassesThrough(t *testing.T) {
	leads := sampleLeads()
	if got := FilterByStatus(leads, "all"); len(got) != len(leads) {
		t.Errorf(`"all" must return every lead, got %d`, len(got))
	}
	if got := FilterByStatus(leads, ""); len(got) != len(leads) {
		t.Errorf("empty status must return every lead, got %d", len(got))
	}
}

func TestFilterByStatus_NoMatch(t *testing.T) {
	if got := FilterByStatus(sampleLeads(), leadmodels.LeadStatusLost); len(got) != 0 {
		t.Errorf("expected no leads, got %d", len(got))
	}
}
