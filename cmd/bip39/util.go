package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	bip39 "github.com/kelpwallet/go-bip39"
)

// lookupWordlist maps the --language flag to a registered wordlist. An
// empty value returns nil, selecting the configured default.
func lookupWordlist(language string) (*bip39.Wordlist, error) {
	if len(language) == 0 {
		return nil, nil
	}
	return bip39.LookupWordlist(language)
}

// readPassword prompts on stderr and reads a passphrase from the terminal
// without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func formatVersion() string {
	return fmt.Sprintf(
		"\nVersion: %s\nCommit: %s\nDate: %s", version, commit, date,
	)
}
