// Command gcal-auth authorizes read access to the holiday calendar for an
// OAuth desktop client and writes the token the server loads at startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -out token.json
//
// Service account credentials do not need this step.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop client credentials")
	tokenPath := flag.String("out", "token.json", "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarReadonlyScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (%q must be an OAuth desktop app credentials file)", err, *credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the account that owns the holiday calendar:")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("hr-assistant", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", *tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Set holiday.google_calendar.calendar_id and restart the server.\n", *tokenPath)
}
