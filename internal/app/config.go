package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"bitseq/internal/domain"
)

// Bit source names accepted by Config.Source.
const (
	SourceKeystream = "keystream"
	SourceSystem    = "system"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Source  string        // "keystream" (default) or "system"
	Seed    string        // optional; derives a reproducible keystream seed
	Format  domain.Format // output format, labelled by default
	Entropy io.Reader     // optional; defaults to crypto/rand.Reader
	Log     logrus.FieldLogger
}
