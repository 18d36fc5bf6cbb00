// Command credgen prints a password hash and an unrelated random secret key
// for the password given as its only argument.
//
//	credgen <password>
//
// On success stdout holds exactly two lines, the hash and then the key. Any
// failure goes to stderr as a single line with exit status 1.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"credgen/internal/auth"
)

const usage = "usage: credgen <password>"

type generator interface {
	Generate(password string) (auth.Credentials, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, auth.Generator{}))
}

func run(args []string, stdout, stderr io.Writer, gen generator) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	creds, err := gen.Generate(args[0])
	if err != nil {
		fmt.Fprintln(stderr, "error generating credentials: "+err.Error())
		return 1
	}

	w := bufio.NewWriter(stdout)
	fmt.Fprintln(w, creds.PasswordHash)
	fmt.Fprintln(w, creds.SecretKey)
	if err := w.Flush(); err != nil {
		fmt.Fprintln(stderr, "error writing credentials: "+err.Error())
		return 1
	}
	return 0
}
