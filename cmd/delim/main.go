package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"

	"github.com/typerow/typerow/codec"
	"github.com/typerow/typerow/delimited"
	"github.com/typerow/typerow/schemafile"
)

func main() {
	var (
		schemaPath  = flag.String("schema", "", "Path to YAML schema file")
		inPath      = flag.String("in", "", "Input file (default stdin; .gz is decompressed)")
		outPath     = flag.String("out", "", "Re-encode records to this file instead of printing")
		sep         = flag.String("sep", ",", "Field separator")
		quote       = flag.String("quote", "\"", "Quote character")
		escape      = flag.String("escape", "", "Escape character (selects the escaping discipline)")
		outSep      = flag.String("osep", "", "Output separator (default: same as -sep)")
		noHeader    = flag.Bool("noheader", false, "Input has no header row")
		limit       = flag.Int("limit", 0, "Stop after N records (0 = all)")
		stats       = flag.Bool("stats", false, "Print record and error counts")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: delim -schema <schema.yaml> [-in file.csv] [-sep c] [-escape c]")
		fmt.Fprintln(os.Stderr, "       delim -schema <schema.yaml> -in file.csv -out file.tsv -osep '\\t'")
		fmt.Fprintln(os.Stderr, "       delim -schema <schema.yaml> -in file.csv -i  (interactive mode)")
		os.Exit(1)
	}

	cfg, err := buildConfig(*sep, *quote, *escape, !*noHeader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*schemaPath, *inPath, cfg, *limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*schemaPath, *inPath, *outPath, *outSep, cfg, *limit, *stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig turns flag strings into a wire configuration. Separator and
// escape flags accept "\\t" for tab.
func buildConfig(sep, quote, escape string, header bool) (delimited.Config, error) {
	cfg := delimited.Config{Header: header}

	r, err := flagRune("sep", sep)
	if err != nil {
		return cfg, err
	}
	cfg.Sep = r

	if escape != "" {
		r, err := flagRune("escape", escape)
		if err != nil {
			return cfg, err
		}
		cfg.Escape = r
		return cfg, nil
	}

	r, err = flagRune("quote", quote)
	if err != nil {
		return cfg, err
	}
	cfg.Quote = r
	return cfg, nil
}

func flagRune(name, s string) (rune, error) {
	if s == "\\t" {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("-%s must be a single character, got %q", name, s)
	}
	return runes[0], nil
}

func run(schemaPath, inPath, outPath, outSep string, cfg delimited.Config, limit int, stats bool) error {
	shape, err := schemafile.Load(schemaPath)
	if err != nil {
		return err
	}
	schema, err := codec.NewCompiler().Compile(shape)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	reader, err := delimited.NewReader(in, schema, cfg)
	if err != nil {
		return err
	}

	var writer *delimited.Writer
	if outPath != "" {
		outCfg := cfg
		if outSep != "" {
			r, err := flagRune("osep", outSep)
			if err != nil {
				return err
			}
			outCfg.Sep = r
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		writer, err = delimited.NewWriter(f, schema, outCfg)
		if err != nil {
			return err
		}
	}

	names := schema.Names()
	var read, failed int
	for rec, err := range reader.Records() {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", reader.Line(), err)
			continue
		}
		read++

		if writer != nil {
			if err := writer.Write(rec); err != nil {
				return err
			}
		} else {
			printRecord(names, rec)
		}

		if limit > 0 && read >= limit {
			break
		}
	}

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if stats {
		fmt.Fprintf(os.Stderr, "%d records, %d rejected\n", read, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d lines rejected", failed)
	}
	return nil
}

// openInput opens the input stream, transparently decompressing .gz files.
// The returned closer also closes the underlying file.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, func() { f.Close() }, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("open gzip input: %w", err)
	}
	return gz, func() { gz.Close(); f.Close() }, nil
}

func printRecord(names []string, rec codec.Record) {
	parts := make([]string, len(rec))
	for i, v := range rec {
		if v == nil {
			parts[i] = names[i] + "=<absent>"
			continue
		}
		parts[i] = fmt.Sprintf("%s=%v", names[i], v)
	}
	fmt.Println(strings.Join(parts, "  "))
}
