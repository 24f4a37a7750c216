package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

const (
	// LanguageKey is the key to customize the default wordlist language.
	LanguageKey = "LANGUAGE"
	// StrengthKey is the key to customize the entropy size in bits used
	// when generating mnemonics.
	StrengthKey = "STRENGTH"
	// LogLevelKey is the key to customize the log level to catch more
	// specific or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// WordlistDirKey is the key to set a directory of extra wordlist files,
	// one per language, named <LANGUAGE>.txt with one word per line.
	WordlistDirKey = "WORDLIST_DIR"
)

var (
	vip *viper.Viper

	defaultLanguage = "EN"
	defaultStrength = 128
	defaultLogLevel = 4
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("BIP39")
	vip.AutomaticEnv()

	vip.SetDefault(LanguageKey, defaultLanguage)
	vip.SetDefault(StrengthKey, defaultStrength)
	vip.SetDefault(LogLevelKey, defaultLogLevel)

	if err := validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
}

func validate() error {
	language := GetString(LanguageKey)
	if len(language) <= 0 {
		return fmt.Errorf("language must not be null")
	}

	strength := GetInt(StrengthKey)
	if strength%32 != 0 || strength < 128 || strength > 256 {
		return fmt.Errorf(
			"invalid strength, must be a multiple of 32 in the range [128, 256]",
		)
	}

	if dir := GetString(WordlistDirKey); len(dir) > 0 {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("invalid wordlist dir: %s", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("invalid wordlist dir: %s is not a directory", dir)
		}
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}
