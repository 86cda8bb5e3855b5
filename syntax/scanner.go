package syntax

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/iw2rmb/quill/internal/log"
)

// DefaultScanInterval is the period between user-type scans.
const DefaultScanInterval = time.Second

var classNameRE = regexp.MustCompile(`class\s([A-Za-z0-9]+)`)

// Snapshotter provides a point-in-time copy of the document lines.
type Snapshotter interface {
	Lines() []string
}

// ScanLines maps the identifier following "class" on each line to color.
// Only the first match of a line is used.
func ScanLines(lines []string, color ColorID) map[string]ColorID {
	out := make(map[string]ColorID)
	for _, line := range lines {
		m := classNameRE.FindStringSubmatch(line)
		if len(m) > 1 {
			out[m[1]] = color
		}
	}
	return out
}

// Scanner periodically rebuilds the user-type table of a Classifier from a
// document snapshot.
type Scanner struct {
	src        Snapshotter
	classifier *Classifier
	types      *UserTypes
	interval   time.Duration
	updates    chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithInterval sets the scan period. Non-positive values keep the default.
func WithInterval(d time.Duration) ScannerOption {
	return func(s *Scanner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewScanner returns a scanner publishing into c's user-type table. The
// classifier must have been built WithUserTypes.
func NewScanner(src Snapshotter, c *Classifier, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		src:        src,
		classifier: c,
		types:      c.UserTypes(),
		interval:   DefaultScanInterval,
		updates:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Updates receives a value after a scan publishes a table that differs from
// the previous one. Signals are coalesced.
func (s *Scanner) Updates() <-chan struct{} { return s.updates }

// ScanOnce snapshots the document, rebuilds the table and publishes it.
func (s *Scanner) ScanOnce() (changed bool) {
	if s.types == nil {
		return false
	}
	lines := s.src.Lines()
	names := ScanLines(lines, s.classifier.ColorTable().UserDef())
	changed = s.types.Publish(names)
	if changed {
		log.Debug(log.CatScanner, "user types updated", "types", len(names), "lines", len(lines))
		select {
		case s.updates <- struct{}{}:
		default:
		}
	}
	return changed
}

// Run scans immediately and then once per interval until ctx is done.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.ScanOnce()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start runs the scanner in a goroutine. Calling Start on a running scanner
// is a no-op.
func (s *Scanner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	log.Info(log.CatScanner, "scanner started", "interval", s.interval)
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
}

// Stop cancels a running scanner and waits for its goroutine to exit.
func (s *Scanner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Info(log.CatScanner, "scanner stopped")
}
