package ethereum

import (
	"github.com/ethereum/go-ethereum/accounts"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// Provider is the cryptographic backend the Generator draws candidates from.
type Provider interface {
	// CreateRandom returns a fresh random mnemonic together with the
	// address at the default derivation path.
	CreateRandom() (generator.Candidate, error)

	// FromMnemonic derives the address at path from an existing mnemonic.
	FromMnemonic(mnemonic string, path accounts.DerivationPath) (string, error)
}

// PathCreator is implemented by providers that can create a random account
// at an arbitrary path in a single call.
type PathCreator interface {
	CreateRandomAt(path accounts.DerivationPath) (generator.Candidate, error)
}

// Generator produces one candidate per call to Next.
//
// At the default path the provider's CreateRandom is used as is. For a custom
// path the mnemonic is created first and then re-derived at that path, unless
// the provider implements PathCreator and two-step mode is off.
type Generator struct {
	provider Provider
	path     accounts.DerivationPath
	custom   bool
	twoStep  bool
}

// NewGenerator parses path and binds it to provider. A malformed path is a
// configuration error and is reported here, before any candidate is made.
func NewGenerator(provider Provider, path string, twoStep bool) (*Generator, error) {
	parsed, err := generator.ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		provider: provider,
		path:     parsed,
		custom:   parsed.String() != accounts.DefaultBaseDerivationPath.String(),
		twoStep:  twoStep,
	}

	_, direct := provider.(PathCreator)
	log.Debugf("Generator at %v: custom=%v direct=%v", parsed, g.custom, direct && !twoStep)
	return g, nil
}

// Path returns the normalised derivation path candidates are derived at.
func (g *Generator) Path() string {
	return g.path.String()
}

// Next creates a fresh candidate. Errors from the provider are returned
// unchanged; the caller must abort the search on any error.
func (g *Generator) Next() (generator.Candidate, error) {
	if !g.custom {
		return g.provider.CreateRandom()
	}

	if pc, ok := g.provider.(PathCreator); ok && !g.twoStep {
		return pc.CreateRandomAt(g.path)
	}

	// Only the mnemonic of the default-path account is kept
	seed, err := g.provider.CreateRandom()
	if err != nil {
		return generator.Candidate{}, err
	}
	address, err := g.provider.FromMnemonic(seed.Mnemonic, g.path)
	if err != nil {
		return generator.Candidate{}, err
	}
	return generator.Candidate{
		Mnemonic: seed.Mnemonic,
		Address:  address,
		Path:     g.path.String(),
	}, nil
}
