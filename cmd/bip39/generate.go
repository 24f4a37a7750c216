package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bip39 "github.com/kelpwallet/go-bip39"
	"github.com/kelpwallet/go-bip39/internal/config"
)

var (
	strength int

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate a random mnemonic",
		Long: "this command lets you generate a new random mnemonic with the " +
			"given strength, ie. the size in bits of the entropy it encodes",
		RunE: generate,
	}
)

func init() {
	generateCmd.Flags().IntVar(
		&strength, "strength", config.GetInt(config.StrengthKey),
		"entropy size in bits, a multiple of 32 in the range [128, 256]",
	)
	generateCmd.Flags().StringVar(
		&language, "language", "", "wordlist language, defaults to the configured one",
	)
}

func generate(cmd *cobra.Command, args []string) error {
	wordlist, err := lookupWordlist(language)
	if err != nil {
		return err
	}

	mnemonic, err := bip39.GenerateMnemonic(bip39.GenerateMnemonicArgs{
		Strength: strength,
		Wordlist: wordlist,
	})
	if err != nil {
		return err
	}

	fmt.Println(mnemonic)
	return nil
}
