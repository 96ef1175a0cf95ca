package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jabrielm92/ARIadmin-client-sub000/config"
	authmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/models"
	billingmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/models"
	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
	receptionistmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/database"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// InitGlobal fills the process-wide singletons in dependency order.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

func initColNames() {
	global.MongoDB_ColNames.AdminUsers = "admin_users"
	global.MongoDB_ColNames.Clients = "clients"
	global.MongoDB_ColNames.Campaigns = "campaigns"
	global.MongoDB_ColNames.Leads = "leads"
	global.MongoDB_ColNames.BillingRecords = "billing_records"
	global.MongoDB_ColNames.CallTranscripts = "call_transcripts"
	global.MongoDB_ColNames.Appointments = "appointments"

	logrus.Info("Initialized collection names")
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AdminUsers), authmodels.AdminUser{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Clients), clientmodels.Client{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Campaigns), campaignmodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Leads), leadmodels.Lead{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BillingRecords), billingmodels.BillingRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CallTranscripts), receptionistmodels.CallTranscript{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Appointments), receptionistmodels.Appointment{})
}
