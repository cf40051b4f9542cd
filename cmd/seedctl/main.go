// seedctl loads user fixture data into MongoDB, or purges it.
//
// Usage:
//
//	seedctl --import [-file users.json]
//	seedctl --delete
//
// Connection settings come from ROSTERHUB_MONGO_URI and
// ROSTERHUB_MONGO_DATABASE (a .env file is honored). The default fixture
// path can be set with ROSTERHUB_SEED_FILE.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dalemusser/rosterhub/internal/app/store/seed"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seedctl:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	doImport := flag.Bool("import", false, "import fixture records from the seed file")
	doDelete := flag.Bool("delete", false, "delete every user record")
	file := flag.String("file", "", "seed file path (overrides ROSTERHUB_SEED_FILE)")
	flag.Parse()

	if *doImport == *doDelete {
		return fmt.Errorf("specify exactly one of --import or --delete")
	}

	uri := envOr("ROSTERHUB_MONGO_URI", "mongodb://localhost:27017")
	database := envOr("ROSTERHUB_MONGO_DATABASE", "rosterhub")

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Batch())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := userstore.New(client.Database(database))

	if *doDelete {
		n, err := store.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("delete users: %w", err)
		}
		logger.Info("users deleted", zap.Int64("count", n))
		return nil
	}

	path := *file
	if path == "" {
		path = envOr("ROSTERHUB_SEED_FILE", "users.json")
	}
	src := seed.NewSource(path)
	if err := src.Load(); err != nil {
		return err
	}

	imported, failed := 0, 0
	for _, rec := range src.Records() {
		if _, err := store.Create(ctx, rec.NewUser()); err != nil {
			failed++
			logger.Warn("record skipped", zap.String("email", rec.Email), zap.Error(err))
			continue
		}
		imported++
	}
	logger.Info("import finished",
		zap.String("file", path),
		zap.Int("imported", imported),
		zap.Int("failed", failed),
	)
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
