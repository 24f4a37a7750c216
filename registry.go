package bip39

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kelpwallet/go-bip39/wordlists"
)

// LanguageEnglish is the identifier of the built-in English wordlist.
const LanguageEnglish = "EN"

// Registry holds wordlists by language and tracks which one is the
// default for operations called without an explicit wordlist. It is safe
// for concurrent use.
type Registry struct {
	lock        sync.RWMutex
	wordlists   map[string]*Wordlist
	defaultLang string
}

// NewRegistry returns an empty registry with no default selected.
func NewRegistry() *Registry {
	return &Registry{wordlists: make(map[string]*Wordlist)}
}

// Register adds wordlist under its language identifier, replacing any
// wordlist previously registered under the same identifier. If that
// identifier is the current default, the default follows the replacement.
func (r *Registry) Register(wordlist *Wordlist) error {
	if wordlist == nil {
		return ErrMissingWordlist
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.wordlists[wordlist.Language()] = wordlist
	return nil
}

// Wordlist returns the wordlist registered under language.
func (r *Registry) Wordlist(language string) (*Wordlist, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	wordlist, ok := r.wordlists[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWordlist, language)
	}
	return wordlist, nil
}

// Languages returns the identifiers of all registered wordlists, sorted.
func (r *Registry) Languages() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	languages := make([]string, 0, len(r.wordlists))
	for language := range r.wordlists {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

// SetDefault selects the wordlist registered under language as the
// registry default. It fails if the language is not registered.
func (r *Registry) SetDefault(language string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.wordlists[language]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWordlist, language)
	}
	r.defaultLang = language
	return nil
}

// Default returns the current default wordlist.
func (r *Registry) Default() (*Wordlist, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.defaultLang == "" {
		return nil, ErrNoDefaultWordlist
	}
	return r.wordlists[r.defaultLang], nil
}

// DefaultLanguage returns the identifier of the current default wordlist.
func (r *Registry) DefaultLanguage() (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.defaultLang == "" {
		return "", ErrNoDefaultWordlist
	}
	return r.defaultLang, nil
}

// defaultRegistry backs the package-level wordlist functions. The English
// wordlist is registered and selected at init.
var defaultRegistry = NewRegistry()

func init() {
	english, err := NewWordlist(NewWordlistArgs{
		Language: LanguageEnglish,
		Words:    wordlists.English,
	})
	if err != nil {
		panic(fmt.Sprintf("bip39: built-in english wordlist: %s", err))
	}
	if err := defaultRegistry.Register(english); err != nil {
		panic(fmt.Sprintf("bip39: built-in english wordlist: %s", err))
	}
	if err := defaultRegistry.SetDefault(LanguageEnglish); err != nil {
		panic(fmt.Sprintf("bip39: built-in english wordlist: %s", err))
	}
}

// RegisterWordlist adds wordlist to the package registry, replacing any
// wordlist registered under the same language.
func RegisterWordlist(wordlist *Wordlist) error {
	return defaultRegistry.Register(wordlist)
}

// LookupWordlist returns the package registry wordlist for language.
func LookupWordlist(language string) (*Wordlist, error) {
	return defaultRegistry.Wordlist(language)
}

// Languages returns the language identifiers registered in the package
// registry, sorted.
func Languages() []string {
	return defaultRegistry.Languages()
}

// SetDefaultWordlist selects the package-wide default wordlist used by
// operations called without an explicit one.
func SetDefaultWordlist(language string) error {
	return defaultRegistry.SetDefault(language)
}

// GetDefaultWordlist returns the language identifier of the package-wide
// default wordlist.
func GetDefaultWordlist() (string, error) {
	return defaultRegistry.DefaultLanguage()
}
