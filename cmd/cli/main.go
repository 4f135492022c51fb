package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// One-shot client: trigger a check through the API and print the verdict as
// share-ready text.
func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	key := os.Getenv("API_KEY")

	req, _ := http.NewRequest(http.MethodPost, api+"/api/check", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error contacting API:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Fprintln(os.Stderr, "API returned status:", resp.Status)
		os.Exit(1)
	}

	var body struct {
		Word   string `json:"word"`
		Result struct {
			Timestamp time.Time `json:"timestamp"`
			Error     string    `json:"error"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fmt.Fprintln(os.Stderr, "Bad API response:", err)
		os.Exit(1)
	}

	fmt.Printf("isAWSback: %s. Checked at %s.\n",
		body.Word, body.Result.Timestamp.Local().Format("2006-01-02 15:04:05"))
	if body.Result.Error != "" {
		fmt.Println("Note:", body.Result.Error)
	}
}
