// Smoke-tests a running API instance with one example fixture.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	url := flag.String("url", "http://localhost:8080/api/v1/predictions/match", "prediction endpoint")
	flag.Parse()

	// The example fixture the TUI form starts from.
	payload := map[string]any{
		"home_team": map[string]any{
			"name":            "Arsenal",
			"form":            map[string]int{"wins": 3, "draws": 1, "losses": 1},
			"league_position": 4,
			"goals_scored":    28,
			"goals_conceded":  15,
			"key_injuries":    1,
		},
		"away_team": map[string]any{
			"name":            "Liverpool",
			"form":            map[string]int{"wins": 2, "draws": 2, "losses": 1},
			"league_position": 2,
			"goals_scored":    31,
			"goals_conceded":  12,
			"key_injuries":    2,
			"suspensions":     1,
		},
		"head_to_head": map[string]int{"home_wins": 2, "draws": 2, "away_wins": 1},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	req, err := http.NewRequest("POST", *url, bytes.NewBuffer(body))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(respBody))

	if resp.StatusCode != http.StatusOK {
		log.Fatal("Smoke test failed")
	}
}
