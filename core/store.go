package core

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/0xRadioAc7iv/daysince/internal"
	"github.com/0xRadioAc7iv/daysince/internal/record"
	"github.com/0xRadioAc7iv/daysince/internal/utils"
)

// Store holds every recorded label for a single invocation. It is loaded
// from disk by Open and written back in full after each Did.
//
// A Store is not safe for concurrent use, and nothing stops two processes
// from rewriting the same file at once; the last writer wins.
type Store struct {
	path    string
	entries record.Entries
	clock   func() time.Time
	logger  *slog.Logger
}

// Open loads the data file at cfg.FilePath, creating an empty one if it does
// not exist yet.
func Open(cfg internal.Config) (*Store, error) {
	s := &Store{
		path:   cfg.FilePath,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}

	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) load() error {
	if !utils.PathExists(s.path) {
		s.logger.Debug("data file not found, creating one", "path", s.path)

		if err := utils.CreateEmptyFile(s.path); err != nil {
			return fmt.Errorf("unable to create %s: %w", s.path, err)
		}
		s.entries = make(record.Entries)
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return &LoadError{Path: s.path, Err: err}
	}

	entries, err := record.Decode(string(raw))
	if err != nil {
		return &LoadError{Path: s.path, Err: err}
	}

	s.entries = entries
	s.logger.Debug("loaded data file", "path", s.path, "entries", len(entries))

	return nil
}

// Did records the current time under label, replacing any earlier entry, and
// rewrites the data file. It returns the stored timestamp.
func (s *Store) Did(label string) (uint64, error) {
	if err := record.ValidateLabel(label); err != nil {
		return 0, fmt.Errorf("cannot record %q: %w", label, err)
	}

	now, err := s.now()
	if err != nil {
		return 0, err
	}

	s.entries[label] = now

	if err := s.persist(); err != nil {
		return 0, err
	}

	return now, nil
}

// Since returns the milliseconds elapsed since label was last recorded.
// found is false, with a nil error, when label was never recorded.
func (s *Store) Since(label string) (elapsed uint64, found bool, err error) {
	recordedAt, ok := s.entries[label]
	if !ok {
		return 0, false, nil
	}

	now, err := s.now()
	if err != nil {
		return 0, true, err
	}

	if recordedAt > now {
		return 0, true, fmt.Errorf("%w: %q was recorded at %d, after the current time %d", ErrClock, label, recordedAt, now)
	}

	return now - recordedAt, true, nil
}

// Get returns the stored timestamp for label.
func (s *Store) Get(label string) (uint64, bool) {
	ts, ok := s.entries[label]
	return ts, ok
}

// Len returns the number of recorded labels.
func (s *Store) Len() int {
	return len(s.entries)
}

// Path returns the data file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Current time in milliseconds since the Unix epoch
func (s *Store) now() (uint64, error) {
	t := s.clock()
	if t.Before(time.Unix(0, 0)) {
		return 0, fmt.Errorf("%w: clock reports %s, before the Unix epoch", ErrClock, t.UTC().Format(time.RFC3339))
	}
	return uint64(t.UnixMilli()), nil
}

// The whole file is truncated and rewritten in place. This is not atomic:
// a crash part way through can leave a truncated data file.
func (s *Store) persist() error {
	if err := utils.OverwriteFile(s.path, []byte(record.Encode(s.entries))); err != nil {
		return fmt.Errorf("unable to write %s: %w", s.path, err)
	}

	s.logger.Debug("data file written", "path", s.path, "entries", len(s.entries))
	return nil
}
