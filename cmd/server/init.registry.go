package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jabrielm92/ARIadmin-client-sub000/config"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// InitRegistry registers every collection the services resolve at startup.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections registers the MongoDB collections into the global registry.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.AdminUsers,
		global.MongoDB_ColNames.Clients,
		global.MongoDB_ColNames.Campaigns,
		global.MongoDB_ColNames.Leads,
		global.MongoDB_ColNames.BillingRecords,
		global.MongoDB_ColNames.CallTranscripts,
		global.MongoDB_ColNames.Appointments,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
