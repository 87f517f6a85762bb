package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"server/internal/auth"
)

// Seeds a demo account plus a starter taxonomy so a fresh deployment has
// something to browse.
func main() {
	var (
		emailFlag    string
		passwordFlag string
	)
	flag.StringVar(&emailFlag, "email", "demo@example.com", "email for the demo account")
	flag.StringVar(&passwordFlag, "password", "changeme", "password for the demo account")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(fmt.Errorf("DATABASE_URL is required"))
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	hash, err := auth.HashPassword(passwordFlag)
	if err != nil {
		exitWithError(fmt.Errorf("hash password: %w", err))
	}

	var userID int64
	err = db.QueryRow(`
INSERT INTO users (username, email, password, first_name, last_name)
VALUES ('demo', $1, $2, 'Demo', 'User')
ON CONFLICT (email) DO UPDATE SET username = users.username
RETURNING id;
`, emailFlag, hash).Scan(&userID)
	if err != nil {
		exitWithError(fmt.Errorf("seed user: %w", err))
	}

	categories := map[string]string{
		"Agriculture":  "Farming, agro-processing and rural labour",
		"Construction": "Building trades and site work",
		"Retail":       "Shops, markets and street vending",
		"Education":    "Teaching, tutoring and training",
	}
	for name, description := range categories {
		var categoryID int64
		err := db.QueryRow(`
INSERT INTO categories (name, description, user_id)
VALUES ($1, $2, $3)
RETURNING id;
`, name, description, userID).Scan(&categoryID)
		if err != nil {
			exitWithError(fmt.Errorf("seed category %q: %w", name, err))
		}

		_, err = db.Exec(`
INSERT INTO employments (user_id, category_id, title, description, location)
VALUES ($1, $2, $3, $4, 'Nairobi');
`, userID, categoryID, "Entry role in "+name, "Starter position seeded for "+name)
		if err != nil {
			exitWithError(fmt.Errorf("seed employment for %q: %w", name, err))
		}
	}

	fmt.Printf("seeded demo user %s (id=%d) and %d categories\n", emailFlag, userID, len(categories))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
