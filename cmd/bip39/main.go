package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	bip39 "github.com/kelpwallet/go-bip39"
	"github.com/kelpwallet/go-bip39/internal/config"
	"github.com/kelpwallet/go-bip39/wordlists"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	rootCmd = &cobra.Command{
		Use:   "bip39",
		Short: "CLI for bip39 mnemonics",
		Long: "This CLI lets you generate, encode, decode and validate bip39 " +
			"mnemonics, derive binary seeds from them and manage the wordlists " +
			"they are encoded with",
		PersistentPreRunE: setup,
		Version:           formatVersion(),
	}
)

func init() {
	rootCmd.AddCommand(
		generateCmd, encodeCmd, decodeCmd, validateCmd, seedCmd, wordlistsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if dir := config.GetString(config.WordlistDirKey); len(dir) > 0 {
		if err := registerWordlistDir(dir); err != nil {
			return fmt.Errorf("load wordlist dir: %w", err)
		}
	}

	language := config.GetString(config.LanguageKey)
	if err := bip39.SetDefaultWordlist(language); err != nil {
		return fmt.Errorf("select default wordlist: %w", err)
	}

	return nil
}

// registerWordlistDir registers a wordlist for every <LANGUAGE>.txt file
// found in dir, one word per line.
func registerWordlistDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		words, err := wordlists.FromFile(path)
		if err != nil {
			return err
		}

		language := strings.ToUpper(strings.TrimSuffix(entry.Name(), ".txt"))
		wordlist, err := bip39.NewWordlist(bip39.NewWordlistArgs{
			Language: language,
			Words:    words,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := bip39.RegisterWordlist(wordlist); err != nil {
			return err
		}

		log.Debugf("registered wordlist %s from %s", language, path)
	}

	return nil
}
