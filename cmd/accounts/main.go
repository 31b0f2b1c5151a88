package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/accounts/internal/accounts/app"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

func main() {
	genSecret := flag.Bool("gen-secret", false, "print a random JWT_SECRET and exit")
	genKey := flag.String("gen-key", "", "write a new EdDSA session key (PKCS8 PEM) to this path and exit")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(app.BuildVersion)
		return
	}

	if *genSecret {
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			log.Fatalf("failed to generate secret: %v", err)
		}
		fmt.Fprintln(os.Stdout, secret)
		return
	}

	if *genKey != "" {
		if err := cryptox.WriteEd25519KeyFile(*genKey); err != nil {
			log.Fatalf("failed to write session key: %v", err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s; set ACCOUNTS_JWT_ALGORITHM=EdDSA and ACCOUNTS_JWT_KEY_FILE=%s\n", *genKey, *genKey)
		return
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
