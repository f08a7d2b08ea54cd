package diag

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko"
)

// Origin is the provenance of a skin warning.
type Origin struct {
	File string
	Line int
}

func (o Origin) String() string {
	if o.File == "" {
		return "<unknown>"
	}
	if o.Line <= 0 {
		return o.File
	}
	return fmt.Sprintf("%s:%d", o.File, o.Line)
}

// Warning is a single skin warning.
type Warning struct {
	Origin  Origin
	Message string
}

func (w Warning) String() string {
	return w.Origin.String() + ": " + w.Message
}

// Sink receives skin warnings. A nil *Sink discards all warnings.
type Sink struct {
	Enabled        bool          // emit warnings at all
	BreakOnWarning bool          // call Break for every emitted warning
	Handler        func(Warning) // optional, called for every emitted warning
	Break          func(Warning) // break hook, e.g. a debugger trap

	mu       sync.Mutex
	record   bool
	count    int
	warnings []Warning
}

// NewSink creates an enabled sink.
func NewSink() *Sink {
	return &Sink{Enabled: true}
}

// Configure sets the sink's flags from configuration keys
// "skin.warnings" and "skin.breakonwarning".
func Configure(s *Sink, conf schuko.Configuration) {
	if s == nil || conf == nil {
		return
	}
	if conf.IsSet("skin.warnings") {
		s.Enabled = conf.GetBool("skin.warnings")
	}
	if conf.IsSet("skin.breakonwarning") {
		s.BreakOnWarning = conf.GetBool("skin.breakonwarning")
	}
}

// Warn emits a warning, if the sink is enabled.
func (s *Sink) Warn(origin Origin, format string, args ...interface{}) {
	if s == nil || !s.Enabled {
		return
	}
	w := Warning{Origin: origin, Message: fmt.Sprintf(format, args...)}
	tracer().Infof("skin warning: %s", w)
	s.mu.Lock()
	s.count++
	if s.record {
		s.warnings = append(s.warnings, w)
	}
	handler, brk := s.Handler, s.Break
	s.mu.Unlock()
	if handler != nil {
		handler(w)
	}
	if s.BreakOnWarning && brk != nil {
		brk(w)
	}
}

// Record switches recording of warnings on or off. Switching it off
// drops the recorded warnings.
func (s *Sink) Record(on bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = on
	if !on {
		s.warnings = nil
	}
}

// Warnings returns a copy of the recorded warnings.
func (s *Sink) Warnings() []Warning {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w := make([]Warning, len(s.warnings))
	copy(w, s.warnings)
	return w
}

// Count returns the number of warnings emitted so far.
func (s *Sink) Count() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Reset clears the counter and recorded warnings.
func (s *Sink) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = 0
	s.warnings = nil
}
