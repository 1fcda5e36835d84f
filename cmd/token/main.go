// Command token issues a signed bearer token for the administrative endpoints.
// It is used to bootstrap the first admin client.
//
// Usage:
//
//	token --role=admin --ttl=24h
//
// Requires AUTH_JWT_SECRET (or auth.jwt_secret in CONFIG_PATH) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/auth"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/pkg/ctxutil"
)

func main() {
	role := flag.String("role", ctxutil.RoleAdmin, "role claim of the token")
	subject := flag.String("subject", "", "subject uuid (default: random)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET is not set; administrative endpoints are disabled")
		os.Exit(1)
	}

	sub := uuid.New()
	if *subject != "" {
		if sub, err = uuid.Parse(*subject); err != nil {
			log.Fatalf("parse subject: %v", err)
		}
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(sub, *role)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
