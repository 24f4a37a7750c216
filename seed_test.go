package bip39_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	bip39 "github.com/kelpwallet/go-bip39"
)

func TestMnemonicToSeed(t *testing.T) {
	t.Parallel()

	mnemonic := codecVectors[0].mnemonic

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			password string
			seed     string
		}{
			{
				name:     "without passphrase",
				password: "",
				seed:     "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
			},
			{
				name:     "with passphrase",
				password: "TREZOR",
				seed:     "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				seed := bip39.MnemonicToSeed(mnemonic, tt.password)
				require.Len(t, seed, bip39.SeedSize)
				require.Equal(t, tt.seed, hex.EncodeToString(seed))
			})
		}
	})

	t.Run("passphrase is normalized", func(t *testing.T) {
		t.Parallel()

		precomposed := bip39.MnemonicToSeed(mnemonic, "café")
		decomposed := bip39.MnemonicToSeed(mnemonic, "café")
		require.Equal(t, precomposed, decomposed)
	})

	t.Run("mnemonic is normalized", func(t *testing.T) {
		t.Parallel()

		// the ideographic space folds to a plain one under NFKD, so both
		// spellings of a mnemonic derive the same seed.
		ideographic := bip39.MnemonicToSeed("あいこくしん　あいさつ", "")
		spaced := bip39.MnemonicToSeed("あいこくしん あいさつ", "")
		require.Equal(t, ideographic, spaced)
	})
}

func TestMnemonicToSeedContext(t *testing.T) {
	t.Parallel()

	mnemonic := codecVectors[0].mnemonic

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		seed, err := bip39.MnemonicToSeedContext(context.Background(), mnemonic, "TREZOR")
		require.NoError(t, err)
		require.Equal(t, bip39.MnemonicToSeed(mnemonic, "TREZOR"), seed)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		seed, err := bip39.MnemonicToSeedContext(ctx, mnemonic, "")
		require.Nil(t, seed)
		require.ErrorIs(t, err, context.Canceled)
	})
}
