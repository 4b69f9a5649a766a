package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-item-converter/internal/services/catalog"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	key := os.Getenv("CATALOG_KEY")
	if key == "" {
		key = "catalog:base_items"
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
	fmt.Printf("Scanning %s for broken base items...\n", key)

	iter := client.HScan(ctx, key, 0, "*", 0).Iterator()

	var brokenFields []string
	var checkedCount int

	for iter.Next(ctx) {
		field := iter.Val()
		if !iter.Next(ctx) {
			break
		}
		data := iter.Val()
		checkedCount++

		var fields map[string]any
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", field)
			brokenFields = append(brokenFields, field)
			continue
		}

		if name, _ := fields["name"].(string); name == "" {
			fmt.Printf("✗ No name in %s\n", field)
			brokenFields = append(brokenFields, field)
			continue
		}

		for _, dmg := range []string{"dmg1", "dmg2"} {
			notation, ok := fields[dmg].(string)
			if !ok {
				continue
			}
			if err := catalog.ValidateDamageDice(notation); err != nil {
				fmt.Printf("✗ Bad %s %q in %s\n", dmg, notation, field)
				brokenFields = append(brokenFields, field)
				break
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d entries, found %d broken entries\n", checkedCount, len(brokenFields))

	if len(brokenFields) == 0 {
		fmt.Println("No broken entries found!")
		return
	}

	fmt.Println("\nBroken entries:")
	for _, field := range brokenFields {
		fmt.Printf("  - %s\n", field)
	}

	fmt.Print("\nDo you want to DELETE these entries from the snapshot? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, field := range brokenFields {
		if err := client.HDel(ctx, key, field).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", field, err)
		} else {
			fmt.Printf("Deleted %s\n", field)
		}
	}
	fmt.Println("\nCleanup complete!")
}
