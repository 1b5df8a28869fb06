// Package textsink adapts diag.Sink to the module's own terminal logger,
// so a caller who already uses snapio.Logger elsewhere in their program
// can route usagedoc diagnostics through the same theme and writers
// instead of standing up a second logging path.
package textsink

import (
	snapio "github.com/dzonerzy/go-usagedoc/io"

	"github.com/dzonerzy/go-usagedoc/diag"
)

// Sink writes diag.Events through a snapio.Logger at LevelDebug.
type Sink struct {
	logger *snapio.Logger
}

// New returns a Sink that logs through logger.
func New(logger *snapio.Logger) *Sink {
	return &Sink{logger: logger}
}

// Emit implements diag.Sink.
func (s *Sink) Emit(e diag.Event) {
	s.logger.Debug("%s: %s", kindName(e.Kind), e.Detail)
}

func kindName(k diag.Kind) string {
	switch k {
	case diag.DocCompiled:
		return "doc_compiled"
	case diag.ArgvTokenized:
		return "argv_tokenized"
	case diag.MatchFrontier:
		return "match_frontier"
	case diag.PanicRecovered:
		return "panic_recovered"
	default:
		return "unknown"
	}
}
