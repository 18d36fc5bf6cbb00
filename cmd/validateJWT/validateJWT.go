package main

import (
	"fmt"
	"os"

	"credgen/internal/auth"
	"credgen/internal/config"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "invalid number of arguments"+"\n"+
			"usage: validateJWT <jwt> [secret]")
		os.Exit(1)
	}

	jwt := os.Args[1]
	var secret string
	if len(os.Args) == 3 {
		secret = os.Args[2]
	} else {
		cfg, err := config.LoadToken()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		secret = cfg.SecretKey
	}

	uuid, err := auth.ValidateJWT(jwt, secret)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error decoding token: "+err.Error())
		os.Exit(1)
	}

	fmt.Println("UUID: " + uuid.String())
}
