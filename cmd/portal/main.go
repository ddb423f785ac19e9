package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"event-portal/internal/app"
	"event-portal/internal/auth"
	"event-portal/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config; environment only when empty")
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for admin.password_hash and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		fmt.Fprintln(os.Stdout, hash)
		return
	}

	cfg := config.MustLoad(*configPath)

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
