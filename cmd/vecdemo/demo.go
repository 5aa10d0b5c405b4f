package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/joshuapare/veckit/alloc"
	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/pkg/types"
	"github.com/joshuapare/veckit/vec"
)

const (
	prompt = "give me a decimal integer: "

	encodingUTF8        = "utf-8"
	encodingWindows1252 = "windows-1252"

	allocHeap = "heap"
	allocMmap = "mmap"
)

var errParse = errors.New("error parsing user input into an integer!")

// config holds the resolved command-line settings.
type config struct {
	InitialCapacity int
	Encoding        string
	Allocator       string
	MaxCapacity     int // 0 means unlimited
	Quiet           bool
	Verbose         bool
	NoColor         bool
}

// statser is implemented by every allocator in package alloc.
type statser interface {
	Stats() alloc.Stats
}

// run drives the read-parse-append-echo loop until in is exhausted.
// Prompts, echoes and parse errors go to stderr.
func run(in io.Reader, stderr io.Writer, cfg config) error {
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("initial capacity must not be negative, got %d", cfg.InitialCapacity)
	}
	src, err := decodeInput(in, cfg.Encoding)
	if err != nil {
		return err
	}
	slots, err := newAllocator(cfg)
	if err != nil {
		return err
	}

	st := newStyles(stderr, cfg.NoColor)
	numbers := vec.NewWithOptions[int](cfg.InitialCapacity, nil, types.Options[int]{
		Allocator: slots,
		Name:      "numbers",
	})
	defer numbers.Destroy()

	r := bufio.NewReader(src)
	for {
		if !cfg.Quiet {
			fmt.Fprint(stderr, st.prompt.Render(prompt))
		}
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("error prompting user: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		n, err := parseNumber(line)
		if err != nil {
			fmt.Fprintln(stderr, st.err.Render(err.Error()))
		} else {
			numbers.PushBack(n)
			echo(stderr, st, &numbers)
		}

		if readErr != nil {
			break
		}
	}

	if cfg.Verbose {
		if s, ok := slots.(statser); ok {
			stats := s.Stats()
			logger.Debug("allocator stats",
				"allocs", stats.Allocs, "reallocs", stats.Reallocs,
				"frees", stats.Frees, "peak_slots", stats.PeakSlots)
		}
	}
	return nil
}

// parseNumber accepts a base-10 integer surrounded by optional whitespace.
func parseNumber(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errParse
	}
	return n, nil
}

func echo(w io.Writer, st styles, numbers *vec.Vec[int]) {
	var b strings.Builder
	b.WriteString(st.label.Render("You have typed in the number(s):"))
	for i := range numbers.Len() {
		b.WriteByte(' ')
		b.WriteString(st.number.Render(strconv.Itoa(numbers.Get(i))))
	}
	fmt.Fprintln(w, b.String())
}

func decodeInput(in io.Reader, enc string) (io.Reader, error) {
	switch strings.ToLower(enc) {
	case "", encodingUTF8, "utf8":
		return in, nil
	case encodingWindows1252, "cp1252":
		return transform.NewReader(in, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want %s or %s)", enc, encodingUTF8, encodingWindows1252)
	}
}

func newAllocator(cfg config) (alloc.Allocator[int], error) {
	var slots alloc.Allocator[int]
	switch cfg.Allocator {
	case "", allocHeap:
		slots = alloc.NewHeap[int]()
	case allocMmap:
		m, err := alloc.NewMmap[int]()
		if err != nil {
			return nil, err
		}
		slots = m
	default:
		return nil, fmt.Errorf("unknown allocator %q (want %s or %s)", cfg.Allocator, allocHeap, allocMmap)
	}
	if cfg.MaxCapacity > 0 {
		slots = alloc.NewBudget(slots, cfg.MaxCapacity)
	}
	return slots, nil
}
