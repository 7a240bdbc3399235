package app

import (
	"crypto/rand"
	"fmt"

	"github.com/sirupsen/logrus"

	"bitseq/internal/domain"
	"bitseq/internal/entropy"
	"bitseq/internal/services/sequence"
)

// Wire bundles the generator and output settings for the CLI.
type Wire struct {
	Generator domain.SequenceGenerator
	Format    domain.Format
}

// NewWire constructs the dependency graph from cfg. The bit source is seeded
// here, once per process; an unavailable platform entropy source is reported
// as domain.ErrEntropySourceUnavailable.
func NewWire(cfg Config) (*Wire, error) {
	format, err := domain.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}

	r := cfg.Entropy
	if r == nil {
		r = rand.Reader
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	var src domain.BitSource
	switch cfg.Source {
	case "", SourceKeystream:
		var seed entropy.Seed
		if cfg.Seed != "" {
			seed = entropy.DeriveSeed(cfg.Seed)
			log.WithField("service", "app").Debug("keystream seeded from --seed")
		} else if seed, err = entropy.NewSeedFrom(r); err != nil {
			return nil, err
		}
		ks, err := entropy.NewKeystream(&seed)
		if err != nil {
			return nil, fmt.Errorf("keystream: %w", err)
		}
		src = ks
	case SourceSystem:
		if cfg.Seed != "" {
			return nil, fmt.Errorf("a seed requires the %q source", SourceKeystream)
		}
		src = entropy.NewReaderSource(r)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source)
	}
	log.WithFields(logrus.Fields{"service": "app", "source": cfg.Source, "format": format}).Debug("wired generator")

	return &Wire{
		Generator: sequence.New(src),
		Format:    format,
	}, nil
}
