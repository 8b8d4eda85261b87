// auth_cleanup deletes refresh tokens whose expiry has passed. Meant to run
// from cron.
package main

import (
	"context"
	"log"
	"time"

	"medcontrol/internal/config"
	"medcontrol/internal/database"
	"medcontrol/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tokens := repository.NewRefreshTokenRepository(db)
	deleted, err := tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}
	log.Printf("deleted %d expired refresh tokens", deleted)
}
