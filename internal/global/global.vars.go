// Package global holds process-wide singletons: parsed config, the MongoDB
// session, collection names and the collection registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jabrielm92/ARIadmin-client-sub000/config"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/registry"
)

// CollectionNames lists every MongoDB collection the portal uses.
type CollectionNames struct {
	AdminUsers      string // administrator accounts
	Clients         string // tenant (client business) records
	Campaigns       string // lead-gen campaigns
	Leads           string // captured / call-generated leads
	BillingRecords  string // per-client billing agreements
	CallTranscripts string // voice assistant call transcripts
	Appointments    string // appointments booked by the assistant
}

// Process-wide singletons
var Validate *validator.Validate            // request validation instance
var MongoDB_Session *mongo.Client           // MongoDB session
var ServerConfig *config.Configuration      // parsed server configuration
var MongoDB_ColNames = CollectionNames{}    // collection names, filled during init

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // named collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // named databases
