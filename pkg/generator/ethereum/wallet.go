// Package ethereum provides seed-phrase based Ethereum account generation and
// the address matcher used by the search loop.
//
// Accounts follow the same scheme as MetaMask and Ledger: a BIP-39 mnemonic is
// stretched into a seed, a BIP-32 master key is derived from it and walked
// down a BIP-44 path (m/44'/60'/0'/0/0 by default). The account address is the
// last 20 bytes of Keccak-256 over the uncompressed public key.
package ethereum

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// HDWallet creates random mnemonics and derives Ethereum accounts from them.
// It is stateless apart from its settings and safe to reuse across iterations.
type HDWallet struct {
	entropyBits int
	passphrase  string
	params      *chaincfg.Params // Only used for extended key version bytes
}

// NewHDWallet creates a wallet producing mnemonics of the given word count.
// If wordCount is 0, it defaults to 12 words.
func NewHDWallet(wordCount int, passphrase string) (*HDWallet, error) {
	bits, err := generator.EntropyBits(wordCount)
	if err != nil {
		return nil, err
	}
	return &HDWallet{
		entropyBits: bits,
		passphrase:  passphrase,
		params:      &chaincfg.MainNetParams,
	}, nil
}

// CreateRandom generates a fresh mnemonic and the account at the default path.
func (w *HDWallet) CreateRandom() (generator.Candidate, error) {
	return w.CreateRandomAt(accounts.DefaultBaseDerivationPath)
}

// CreateRandomAt generates a fresh mnemonic and the account at path.
func (w *HDWallet) CreateRandomAt(path accounts.DerivationPath) (generator.Candidate, error) {
	mnemonic, err := w.newMnemonic()
	if err != nil {
		return generator.Candidate{}, err
	}

	address, err := w.FromMnemonic(mnemonic, path)
	if err != nil {
		return generator.Candidate{}, err
	}

	return generator.Candidate{
		Mnemonic: mnemonic,
		Address:  address,
		Path:     path.String(),
	}, nil
}

// FromMnemonic derives the 0x-prefixed EIP-55 address at path from an
// existing mnemonic phrase.
func (w *HDWallet) FromMnemonic(mnemonic string, path accounts.DerivationPath) (string, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, w.passphrase)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generator.ErrDerivation, err)
	}

	master, err := hdkeychain.NewMaster(seed, w.params)
	if err != nil {
		return "", fmt.Errorf("%w: master key: %v", generator.ErrDerivation, err)
	}

	key := master
	for _, index := range path {
		key, err = key.Derive(index)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", generator.ErrDerivation, path, err)
		}
	}

	pubKey, err := key.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("%w: public key: %v", generator.ErrDerivation, err)
	}

	return PubkeyToAddress(pubKey).Hex(), nil
}

// newMnemonic draws fresh entropy from crypto/rand and encodes it as words.
func (w *HDWallet) newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(w.entropyBits)
	if err != nil {
		return "", fmt.Errorf("%w: entropy: %v", generator.ErrDerivation, err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: mnemonic: %v", generator.ErrDerivation, err)
	}
	return mnemonic, nil
}

// PubkeyToAddress derives an Ethereum address from a secp256k1 public key.
// Address = last 20 bytes of Keccak256(uncompressed pubkey without the 0x04 tag)
func PubkeyToAddress(pubKey *btcec.PublicKey) common.Address {
	hash := crypto.Keccak256(pubKey.SerializeUncompressed()[1:])
	return common.BytesToAddress(hash[len(hash)-20:])
}
