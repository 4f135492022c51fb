package main

import (
	"fmt"
	"os"
	"strings"
)

// Env sanity check run before deploying the API.
func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("ADDR"))
	endpoints := strings.TrimSpace(os.Getenv("STATUS_ENDPOINTS"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	redis := strings.TrimSpace(os.Getenv("REDIS_URL"))
	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	webhook := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))

	if admin == "" {
		fail("ADMIN_API_KEYS is empty (POST /api/check will 403).")
	}
	if pub == "" {
		fail("PUBLIC_API_KEYS is empty (GET /api/status will 401).")
	}

	// Normalize and sanity-check lists (no spaces around commas).
	for name, v := range map[string]string{"ADMIN_API_KEYS": admin, "PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if apiAddr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + apiAddr)
	}

	if endpoints == "" {
		ok("STATUS_ENDPOINTS empty — the built-in AWS health mirrors will be used.")
	} else {
		for _, u := range strings.Split(endpoints, ",") {
			if !strings.Contains(u, "://") {
				warn("STATUS_ENDPOINTS entry missing scheme: " + strings.TrimSpace(u))
			}
		}
		ok("STATUS_ENDPOINTS present")
	}

	if db == "" && redis == "" && sqlitePath == "" {
		warn("no DATABASE_URL, REDIS_URL or SQLITE_PATH — last result will not survive restarts.")
	} else {
		ok("durable store configured")
	}

	if webhook == "" {
		warn("SLACK_WEBHOOK empty — state changes will only reach the log.")
	} else {
		ok("SLACK_WEBHOOK present")
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty — CORS will allow every origin.")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	ok("preflight passed")
}
