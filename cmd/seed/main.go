// Command main runs the database seeder for Newsroom.
package main

import (
	"flag"
	"log"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	presetPath := flag.String("preset", "", "Path to a YAML preset file (overrides other flags)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *presetPath != "" {
		log.Printf("Applying preset: %s (ignoring other flags)", *presetPath)
		preset, err := seed.LoadPreset(*presetPath)
		if err != nil {
			log.Fatalf("Preset load failed: %v", err)
		}
		if err := s.ApplyPreset(preset); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
	} else {
		log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)
		if _, err := s.SeedCommunity(*numUsers, *numPosts); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All seeded users have the password: password123")
}
