package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Seeds the demo party used by the sample data files: enough materials and
// currency for three potion crafts, plus the alembic the recipe requires.
//
// Usage: go run scripts/seed-demo-data.go [party-id]

const defaultParty = "party_demo"

var inventory = map[string]int{
	"consumable:7": 1, // Alembic, the requirement gate, never consumed
	"consumable:8": 6, // Bitterroot Herb
	"consumable:9": 3, // Spring Water
}

const currency = 160

func main() {
	party := defaultParty
	if len(os.Args) > 1 {
		party = os.Args[1]
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	inventoryKey := "inventory:" + party
	currencyKey := "currency:" + party

	// Refuse to clobber a party that already holds anything without asking.
	existing, err := client.HLen(ctx, inventoryKey).Result()
	if err != nil {
		log.Fatal("Failed to inspect existing inventory:", err)
	}

	if existing > 0 {
		fmt.Printf("Party %s already has %d inventory entries.\n", party, existing)
		fmt.Print("Overwrite with the demo data? (yes/no): ")
		var response string
		fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Aborted - no changes made")
			return
		}
		if err := client.Del(ctx, inventoryKey).Err(); err != nil {
			log.Fatal("Failed to clear existing inventory:", err)
		}
	}

	for field, quantity := range inventory {
		if err := client.HSet(ctx, inventoryKey, field, quantity).Err(); err != nil {
			log.Fatal("Failed to seed inventory:", err)
		}
		fmt.Printf("  %s = %d\n", field, quantity)
	}

	if err := client.Set(ctx, currencyKey, currency, 0).Err(); err != nil {
		log.Fatal("Failed to seed currency:", err)
	}
	fmt.Printf("  currency = %d\n", currency)

	fmt.Printf("\nParty %s seeded. Try: crafting-api client list --party %s\n", party, party)
}
