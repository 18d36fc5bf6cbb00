// Command makeJWT signs a short-lived token with a secret key printed by
// credgen, to check that a freshly provisioned key works end to end.
//
//	makeJWT <UUID|gen> [secret] [expiresInMinutes]
//
// Without a secret argument the key comes from CREDGEN_SECRET_KEY, read from
// the environment or a .env file.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"credgen/internal/auth"
	"credgen/internal/config"

	"github.com/google/uuid"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr,
			"wrong argument arity;\nusage: makeJWT <UUID|gen> [secret] [expiresInMinutes]")
		os.Exit(1)
	}

	cfg, err := config.LoadToken()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	var jwtUUID uuid.UUID
	if os.Args[1] == "gen" {
		jwtUUID = uuid.New()
	} else {
		jwtUUID, err = uuid.Parse(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid UUID: %s: %s\n", os.Args[1], err.Error())
			os.Exit(1)
		}
	}

	secret := cfg.SecretKey
	if len(os.Args) >= 3 {
		secret = os.Args[2]
	}

	expiresIn := cfg.TTL
	if len(os.Args) == 4 {
		minutes, err := strconv.Atoi(os.Args[3])
		if err != nil || minutes <= 0 {
			fmt.Fprintln(os.Stderr, "invalid expiry time: "+os.Args[3])
			os.Exit(1)
		}
		expiresIn = time.Minute * time.Duration(minutes)
	}

	jwt, err := auth.MakeJWT(jwtUUID, secret, expiresIn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "UUID: "+jwtUUID.String())
	fmt.Fprintln(os.Stderr, "expires in: "+expiresIn.String())
	fmt.Println(jwt)
}
