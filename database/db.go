package database

import (
	"context"
	"log"
	"time"

	"prescripto/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// Atlas or DNS can be temporarily unavailable at boot, so the initial
// connection is retried with bounded exponential backoff before giving up.
const (
	connectAttempts  = 6
	connectBaseDelay = 2 * time.Second
)

// InitDB initializes the MongoDB connection.
func InitDB() {
	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)

	delay := connectBaseDelay
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, clientOptions)
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()

		if err == nil {
			MongoClient = client
			log.Println("Connected to MongoDB successfully!")
			return
		}

		if attempt == connectAttempts {
			log.Fatalf("failed to connect to MongoDB after %d attempts: %v", connectAttempts, err)
		}
		log.Printf("Mongo connection attempt %d/%d failed: %v (retrying in %s)", attempt, connectAttempts, err, delay)
		time.Sleep(delay)
		delay *= 2
	}
}

// DB returns the configured application database.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}
