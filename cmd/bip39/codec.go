package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	bip39 "github.com/kelpwallet/go-bip39"
)

var (
	entropy  string
	mnemonic string
	language string

	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "encode entropy into a mnemonic",
		Long: "this command lets you encode a hex entropy string of 16 to 32 " +
			"bytes into a mnemonic of the selected wordlist",
		RunE: encode,
	}
	decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "decode a mnemonic back to its entropy",
		Long: "this command lets you decode a mnemonic back to the hex entropy " +
			"it encodes, verifying its checksum",
		RunE: decode,
	}
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "validate a mnemonic",
		Long: "this command checks that a mnemonic has a valid word count, only " +
			"contains words of the selected wordlist and has a matching checksum",
		RunE: validateMnemonic,
	}
)

func init() {
	encodeCmd.Flags().StringVar(&entropy, "entropy", "", "hex entropy to encode")
	encodeCmd.Flags().StringVar(
		&language, "language", "", "wordlist language, defaults to the configured one",
	)
	encodeCmd.MarkFlagRequired("entropy")

	decodeCmd.Flags().StringVar(&mnemonic, "mnemonic", "", "space separated word list")
	decodeCmd.Flags().StringVar(
		&language, "language", "", "wordlist language, defaults to the configured one",
	)
	decodeCmd.MarkFlagRequired("mnemonic")

	validateCmd.Flags().StringVar(&mnemonic, "mnemonic", "", "space separated word list")
	validateCmd.Flags().StringVar(
		&language, "language", "", "wordlist language, defaults to the configured one",
	)
	validateCmd.MarkFlagRequired("mnemonic")
}

func encode(cmd *cobra.Command, args []string) error {
	wordlist, err := lookupWordlist(language)
	if err != nil {
		return err
	}

	buf, err := hex.DecodeString(entropy)
	if err != nil {
		return fmt.Errorf("invalid entropy format, must be hex: %s", err)
	}

	mnemonic, err := bip39.EntropyToMnemonic(buf, wordlist)
	if err != nil {
		return err
	}

	fmt.Println(mnemonic)
	return nil
}

func decode(cmd *cobra.Command, args []string) error {
	wordlist, err := lookupWordlist(language)
	if err != nil {
		return err
	}

	entropy, err := bip39.MnemonicToEntropy(mnemonic, wordlist)
	if err != nil {
		return err
	}

	fmt.Println(entropy)
	return nil
}

func validateMnemonic(cmd *cobra.Command, args []string) error {
	wordlist, err := lookupWordlist(language)
	if err != nil {
		return err
	}

	if _, err := bip39.MnemonicToEntropy(mnemonic, wordlist); err != nil {
		return err
	}

	fmt.Println("valid mnemonic")
	return nil
}
