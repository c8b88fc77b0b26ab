package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hrdesk.co.kr/hrdesk/config"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/security"
)

// createtoken prints a session token for a registered user, for scripted API calls.
func main() {
	configPath := flag.String("config", os.Getenv("HRDESK_CONFIG"), "path to a YAML config file")
	userID := flag.String("user", "admin", "user id")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load(context.Background(), *configPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := core.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	user, err := core.NewDirectory(store).Find(*userID)
	if err != nil {
		log.Fatal(err)
	}
	if user == nil {
		log.Fatalf("user %s is not registered", *userID)
	}

	token, err := security.CreateSessionToken(security.Identity{UserID: user.ID, RealName: user.Name}, []byte(cfg.Session.SecretKey), *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
