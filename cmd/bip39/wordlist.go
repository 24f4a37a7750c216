package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bip39 "github.com/kelpwallet/go-bip39"
)

var wordlistsCmd = &cobra.Command{
	Use:   "wordlists",
	Short: "list the registered wordlists",
	Long: "this command lists the languages of all registered wordlists, " +
		"marking the default one used by commands called without --language",
	RunE: listWordlists,
}

func listWordlists(cmd *cobra.Command, args []string) error {
	defaultLanguage, err := bip39.GetDefaultWordlist()
	if err != nil {
		return err
	}

	for _, language := range bip39.Languages() {
		if language == defaultLanguage {
			fmt.Printf("%s (default)\n", language)
			continue
		}
		fmt.Println(language)
	}
	return nil
}
