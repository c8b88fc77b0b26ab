package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/core/models"
)

// seed registers the admin account in users.csv when it is missing.
func main() {
	dataDir := flag.String("data", os.Getenv("HRDESK_DATA_DIR"), "data directory holding the CSV tables")
	password := flag.String("password", os.Getenv("HRDESK_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *dataDir == "" {
		*dataDir = "."
	}
	if *password == "" {
		log.Fatal("admin password is required (-password or HRDESK_ADMIN_PASSWORD)")
	}

	store, err := core.NewFileStore(*dataDir)
	if err != nil {
		log.Fatal(err)
	}
	directory := core.NewDirectory(store)

	existing, err := directory.Find(models.AdminID)
	if err != nil {
		log.Fatal(err)
	}
	if existing != nil {
		fmt.Printf("[INFO] admin already registered in %s\n", store.Path(core.UsersFile))
		return
	}

	admin := models.User{
		ID:         models.AdminID,
		Name:       "관리자",
		Password:   *password,
		Department: "관리팀",
		Workplace:  models.DefaultWorkplace,
		Position:   "관리자",
	}
	if err := directory.Upsert(admin); err != nil {
		log.Fatalf("failed to register admin: %v", err)
	}
	fmt.Printf("[INFO] admin registered in %s\n", store.Path(core.UsersFile))
}
