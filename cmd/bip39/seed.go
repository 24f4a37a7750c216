package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	bip39 "github.com/kelpwallet/go-bip39"
)

var (
	password       string
	skipValidation bool

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "derive the binary seed of a mnemonic",
		Long: "this command lets you derive the 64-byte seed of the given " +
			"mnemonic and an optional passphrase, prompted from the terminal " +
			"when the flag is missing",
		RunE: seed,
	}
)

func init() {
	seedCmd.Flags().StringVar(&mnemonic, "mnemonic", "", "space separated word list")
	seedCmd.Flags().StringVar(
		&password, "password", "", "optional passphrase, prompted when missing",
	)
	seedCmd.Flags().StringVar(
		&language, "language", "", "wordlist language, defaults to the configured one",
	)
	seedCmd.Flags().BoolVar(
		&skipValidation, "skip-validation", false,
		"derive the seed without validating the mnemonic",
	)
	seedCmd.MarkFlagRequired("mnemonic")
}

func seed(cmd *cobra.Command, args []string) error {
	if !skipValidation {
		wordlist, err := lookupWordlist(language)
		if err != nil {
			return err
		}
		if _, err := bip39.MnemonicToEntropy(mnemonic, wordlist); err != nil {
			return err
		}
	}

	if !cmd.Flags().Changed("password") {
		pwd, err := readPassword("Enter passphrase (empty for none): ")
		if err != nil {
			return err
		}
		password = pwd
	}

	seed, err := bip39.MnemonicToSeedContext(cmd.Context(), mnemonic, password)
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(seed))
	return nil
}
