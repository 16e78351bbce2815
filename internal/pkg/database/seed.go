package database

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the bootstrap admin account. There is no public register
// endpoint, so the first admin has to come from configuration. Reruns
// are no-ops.
func Seed(ctx context.Context, db *DB, adminEmail, adminPassword string) error {
	return ensureAdminUser(ctx, db, adminEmail, adminPassword)
}

func ensureAdminUser(ctx context.Context, db *DB, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		slog.Info("Seed admin credentials not set, skipping bootstrap user")
		return nil
	}

	var id string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = db.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, display_name, role) VALUES ($1, $2, $3, 'admin') RETURNING id",
		email, string(hash), "Administrator",
	).Scan(&id)
	if err != nil {
		return err
	}

	slog.Info("Seeded bootstrap admin user", "email", email)
	return nil
}
