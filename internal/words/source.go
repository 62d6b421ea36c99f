package words

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"
)

// DefaultPath is the word list read when no source is configured.
const DefaultPath = "Lexicon.txt"

// DefaultMaxBytes caps the size of a remote list.
const DefaultMaxBytes = 8 << 20

var (
	// ErrUnavailable is returned when the word list cannot be read.
	ErrUnavailable = errors.New("word list unavailable")

	// ErrEmpty is returned when the word list has no entries.
	ErrEmpty = errors.New("word list is empty")
)

//go:embed lexicon.txt
var builtinLexicon string

// Source produces the full list of candidate secret words. String names the
// source in messages.
type Source interface {
	Load(ctx context.Context) ([]string, error)
	fmt.Stringer
}

// ParseList reads one word per line. Trailing whitespace, including the
// line ending, is stripped and blank lines are skipped.
func ParseList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FileSource reads a line-delimited word list from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	list, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, s.Path, err)
	}
	return list, nil
}

func (s FileSource) String() string { return s.Path }

// EmbeddedSource serves the lexicon compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(_ context.Context) ([]string, error) {
	return ParseList(strings.NewReader(builtinLexicon))
}

func (EmbeddedSource) String() string { return "builtin" }

// HTTPSource fetches a line-delimited word list over HTTP. Lists larger
// than MaxBytes (DefaultMaxBytes when zero) are rejected.
type HTTPSource struct {
	URL      string
	Client   *http.Client
	MaxBytes int64
}

func (s HTTPSource) Load(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, s.URL, resp.StatusCode)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, s.URL, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrUnavailable, s.URL, limit)
	}

	list, err := ParseList(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, s.URL, err)
	}
	return list, nil
}

func (s HTTPSource) String() string { return s.URL }

// WordLister is the storage side of a database-backed word list.
type WordLister interface {
	Words(ctx context.Context) ([]string, error)
}

// StoreSource reads the word list from a database.
type StoreSource struct {
	Repo WordLister
}

func (s StoreSource) Load(ctx context.Context) ([]string, error) {
	list, err := s.Repo.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return list, nil
}

func (StoreSource) String() string { return "sqlite" }

// StoreOpener opens the database at path (empty for the default) for a
// StoreSource.
type StoreOpener func(path string) (WordLister, error)

// Open resolves a source spec:
//
//	builtin          the embedded lexicon
//	http(s)://...    a remote list
//	sqlite[:PATH]    the words table of the store at PATH (default store if omitted)
//	anything else    a file path
//
// An empty spec means DefaultPath.
func Open(spec string, stores StoreOpener) (Source, error) {
	switch {
	case spec == "":
		return FileSource{Path: DefaultPath}, nil
	case spec == "builtin":
		return EmbeddedSource{}, nil
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		return HTTPSource{URL: spec}, nil
	case spec == "sqlite", strings.HasPrefix(spec, "sqlite:"):
		if stores == nil {
			return nil, fmt.Errorf("%w: no store available for %q", ErrUnavailable, spec)
		}
		repo, err := stores(strings.TrimPrefix(strings.TrimPrefix(spec, "sqlite"), ":"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return StoreSource{Repo: repo}, nil
	default:
		return FileSource{Path: spec}, nil
	}
}
