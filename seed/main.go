// Command seed loads the demonstration merchant, schedule, holiday and user
// into the configured MongoDB database.
package main

import (
	"context"
	"log"
	"time"

	"bookingschedule/config"
	"bookingschedule/database"
	"bookingschedule/database/repository"
	"bookingschedule/database/seed"

	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	configPath := pflag.String("config", "", "path to a config file")
	password := pflag.String("password", "demo123", "password of the demo user")
	reset := pflag.Bool("reset", false, "drop existing demo records first")
	pflag.Parse()

	config.LoadConfig(*configPath)
	client, err := database.InitDB(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = database.Close(context.Background()) }()
	db := client.Database(config.AppConfig.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if *reset {
		deletes := map[string]bson.M{
			"merchants":       {"merchant_ns_id": seed.DemoMerchantNsID},
			"merchant_users":  {"username": seed.DemoUsername},
			"public_holidays": {"name": "Demo Holiday"},
		}
		for coll, filter := range deletes {
			if _, err := db.Collection(coll).DeleteMany(ctx, filter); err != nil {
				log.Fatalf("Failed to clear %s: %v", coll, err)
			}
		}
	}

	repos := repository.NewMongoRepositories(db)
	if err := repos.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	if err := seed.Demo(ctx, repos, *password, time.Now()); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Printf("Seeded merchant %s and user %s", seed.DemoMerchantNsID, seed.DemoUsername)
}
