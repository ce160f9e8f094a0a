package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Deymos01/pr-reviewer-service/internal/auth"
	"github.com/Deymos01/pr-reviewer-service/internal/config"
)

// Prints ADMIN_TOKEN and USER_TOKEN signed with the configured secrets.
func main() {
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime, 0 for no expiry")
	flag.Parse()

	cfg := config.MustLoad()

	adminToken, err := auth.NewToken(cfg.AdminSecret, auth.RoleAdmin, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	userToken, err := auth.NewToken(cfg.UserSecret, auth.RoleUser, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("ADMIN_TOKEN=" + adminToken)
	fmt.Println("USER_TOKEN=" + userToken)
}
