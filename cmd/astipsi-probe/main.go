package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/asticode/go-astikit"
	"github.com/asticode/go-astipsi"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Flags
var (
	ctx, cancel     = context.WithCancel(context.Background())
	checkCRC32      = flag.Bool("crc", false, "if yes, section CRC32s are checked")
	cpuProfiling    = flag.Bool("cp", false, "if yes, cpu profiling is enabled")
	format          = flag.String("f", "", "the format (text, json, yaml, cbor)")
	inputPath       = flag.String("i", "", "the input path, - for stdin")
	jobs            = flag.Int("j", 0, "the max number of lines decoded concurrently, 0 means no limit")
	memoryProfiling = flag.Bool("mp", false, "if yes, memory profiling is enabled")
	tableTypes      = astikit.NewFlagStrings()
)

func main() {
	// Init
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s <sections|psi|descriptors|text>:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Var(tableTypes, "t", "the table types whitelist (all, pat, cat, pmt, nit, sdt, eit, tdt, tot, unknown)")
	cmd := astikit.FlagCmd()
	flag.Parse()

	// Set logger
	astipsi.SetLogger(log.Default())

	// Handle signals
	handleSignals()

	// Start profiling
	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memoryProfiling {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// Get decode func
	var fn decodeFunc
	switch cmd {
	case "descriptors":
		fn = decodeDescriptors
	case "psi":
		fn = decodePSIData
	case "text":
		fn = decodeText
	case "sections", "":
		fn = decodeSection
	default:
		log.Fatal(fmt.Errorf("astipsi: unknown command %s", cmd))
	}

	// Build the reader
	r, err := buildReader()
	if err != nil {
		log.Fatal(fmt.Errorf("astipsi: building reader failed: %w", err))
	}
	defer r.Close()

	// Read lines
	var ls []string
	if ls, err = readLines(r); err != nil {
		log.Fatal(fmt.Errorf("astipsi: reading lines failed: %w", err))
	}

	// Decode
	var rs []interface{}
	if rs, err = decodeLines(ctx, ls, fn); err != nil {
		log.Fatal(fmt.Errorf("astipsi: decoding lines failed: %w", err))
	}

	// Print
	if err = printResults(os.Stdout, rs); err != nil {
		log.Fatal(fmt.Errorf("astipsi: printing failed: %w", err))
	}
}

func handleSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch)
	go func() {
		for s := range ch {
			if s != syscall.SIGURG {
				log.Printf("Received signal %s\n", s)
			}
			switch s {
			case syscall.SIGABRT, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM:
				cancel()
				return
			}
		}
	}()
}

type reader struct {
	io.Reader
	closers []func() error
}

func (r *reader) Close() (err error) {
	for idx := len(r.closers) - 1; idx >= 0; idx-- {
		if cerr := r.closers[idx](); cerr != nil && err == nil {
			err = cerr
		}
	}
	return
}

func buildReader() (r *reader, err error) {
	// Validate input
	if len(*inputPath) <= 0 {
		err = errors.New("use -i to indicate an input path")
		return
	}

	// Open input
	r = &reader{}
	if *inputPath == "-" {
		r.Reader = os.Stdin
	} else {
		var f *os.File
		if f, err = os.Open(*inputPath); err != nil {
			err = fmt.Errorf("astipsi: opening %s failed: %w", *inputPath, err)
			return
		}
		r.Reader = f
		r.closers = append(r.closers, f.Close)
	}

	// Decompress
	switch filepath.Ext(*inputPath) {
	case ".gz":
		var gr *gzip.Reader
		if gr, err = gzip.NewReader(r.Reader); err != nil {
			r.Close()
			err = fmt.Errorf("astipsi: creating gzip reader failed: %w", err)
			return
		}
		r.Reader = gr
		r.closers = append(r.closers, gr.Close)
	case ".zst":
		var zr *zstd.Decoder
		if zr, err = zstd.NewReader(r.Reader); err != nil {
			r.Close()
			err = fmt.Errorf("astipsi: creating zstd reader failed: %w", err)
			return
		}
		r.Reader = zr
		r.closers = append(r.closers, func() error { zr.Close(); return nil })
	}
	return
}

// readLines returns the non empty lines of r, # comments excluded
func readLines(r io.Reader) (ls []string, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		ls = append(ls, l)
	}
	if err = s.Err(); err != nil {
		err = fmt.Errorf("astipsi: scanning failed: %w", err)
	}
	return
}

type decodeFunc func(bs []byte) (interface{}, error)

// decodeLines decodes lines concurrently and returns results in the same order
func decodeLines(ctx context.Context, ls []string, fn decodeFunc) ([]interface{}, error) {
	rs := make([]interface{}, len(ls))
	g, ctx := errgroup.WithContext(ctx)
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}
	for idx, l := range ls {
		idx, l := idx, l
		g.Go(func() error {
			// Check context
			if err := ctx.Err(); err != nil {
				return err
			}

			// Decode hex
			bs, err := hex.DecodeString(strings.ReplaceAll(l, " ", ""))
			if err != nil {
				return fmt.Errorf("astipsi: decoding hex of line #%d failed: %w", idx+1, err)
			}

			// Decode
			if rs[idx], err = fn(bs); err != nil {
				return fmt.Errorf("astipsi: decoding line #%d failed: %w", idx+1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Filter
	var o []interface{}
	for _, r := range rs {
		if r != nil {
			o = append(o, r)
		}
	}
	return o, nil
}

func parseOptions() (opts []astipsi.ParseOption) {
	if *checkCRC32 {
		opts = append(opts, astipsi.WithCRC32Check())
	}
	return
}

// isTableWhitelisted checks whether s's table type has been requested
func isTableWhitelisted(s *astipsi.PSISection) bool {
	if len(tableTypes.Map) == 0 {
		return true
	}
	if _, ok := tableTypes.Map["all"]; ok {
		return true
	}
	_, ok := tableTypes.Map[strings.ToLower(s.Header.TableType)]
	return ok
}

func decodeSection(bs []byte) (interface{}, error) {
	s, err := astipsi.ParseSection(bs, parseOptions()...)
	if err != nil {
		return nil, err
	}
	if !isTableWhitelisted(s) {
		return nil, nil
	}
	return s, nil
}

func decodePSIData(bs []byte) (interface{}, error) {
	d, err := astipsi.ParsePSIData(bs, parseOptions()...)
	if err != nil {
		return nil, err
	}
	var ss []*astipsi.PSISection
	for _, s := range d.Sections {
		if isTableWhitelisted(s) {
			ss = append(ss, s)
		}
	}
	if len(ss) == 0 {
		return nil, nil
	}
	d.Sections = ss
	return d, nil
}

func decodeDescriptors(bs []byte) (interface{}, error) {
	return astipsi.ParseDescriptors(bs)
}

func decodeText(bs []byte) (interface{}, error) {
	return astipsi.DecodeText(bs), nil
}

func printResults(w io.Writer, rs []interface{}) (err error) {
	switch *format {
	case "cbor":
		e := cbor.NewEncoder(w)
		for _, r := range rs {
			if err = e.Encode(r); err != nil {
				return fmt.Errorf("astipsi: cbor encoding failed: %w", err)
			}
		}
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err = e.Encode(rs); err != nil {
			return fmt.Errorf("astipsi: json encoding failed: %w", err)
		}
	case "yaml":
		e := yaml.NewEncoder(w)
		defer e.Close()
		if err = e.Encode(rs); err != nil {
			return fmt.Errorf("astipsi: yaml encoding failed: %w", err)
		}
	default:
		for _, r := range rs {
			fmt.Fprintln(w, toString(r))
		}
	}
	return
}
