// passrank is the command-line interface to the password strength
// estimator.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"passrank/internal/config"
	"passrank/internal/layout"
	"passrank/internal/logging"
	"passrank/internal/wordlist"
	"passrank/pkg/strength"
)

var (
	configPath = flag.String("config", "", "path to config file")
	jsonOut    = flag.Bool("json", false, "emit JSON instead of styled text")
	locale     = flag.String("locale", "", "display locale, e.g. fr-CA (overrides config)")
	userInputs = flag.String("user", "", "comma-separated user inputs (names, emails)")
	scrub      = flag.Bool("scrub", false, "omit password material from output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	switch cmd {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: passrank check <password>")
			os.Exit(1)
		}
		cmdCheck(flag.Arg(1))
	case "batch":
		path := "-"
		if flag.NArg() >= 2 {
			path = flag.Arg(1)
		}
		cmdBatch(path)
	case "repl":
		cmdRepl()
	case "compile":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: passrank compile <output.db>")
			os.Exit(1)
		}
		cmdCompile(flag.Arg(1))
	case "layouts":
		cmdLayouts()
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `passrank - Password strength estimator

Usage: passrank [options] <command> [args]

Commands:
  check <password>   Evaluate a single password
  batch [file]       Evaluate one password per line from file or stdin
  repl               Interactive evaluation loop (config hot-reloads)
  compile <out.db>   Compile the active word lists into a SQLite database
  layouts            List the available keyboard layouts
  help               Show this help message

Options:
  -config <path>     Path to config file (TOML)
  -json              Emit JSON instead of styled text
  -locale <tag>      Display locale, e.g. fr-CA (overrides config)
  -user <a,b,...>    Comma-separated user inputs tried first by attackers
  -scrub             Omit password material from output`)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(cfg *config.Config) *logging.Logger {
	log, err := logging.FromConfig(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logging: %v\n", err)
		os.Exit(1)
	}
	return log
}

// buildEngine constructs an engine from the resolved configuration and
// the command-line overrides.
func buildEngine(cfg *config.Config) (*strength.Engine, func(), error) {
	var opts []strength.Option
	cleanup := func() {}

	switch {
	case cfg.Engine.WordlistDB != "":
		src, err := wordlist.OpenSQLite(cfg.Engine.WordlistDB)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { src.Close() }
		opts = append(opts, strength.WithSource(src))
	case cfg.Engine.WordlistDir != "":
		opts = append(opts, strength.WithSource(wordlist.Dir(cfg.Engine.WordlistDir)))
	}

	if len(cfg.Engine.Dictionaries) > 0 {
		opts = append(opts, strength.WithDictionaries(cfg.Engine.Dictionaries...))
	}
	if len(cfg.Engine.LayoutFiles) > 0 {
		opts = append(opts, strength.WithLayoutFiles(cfg.Engine.LayoutFiles...))
	}

	tag := cfg.Engine.Locale
	if *locale != "" {
		tag = *locale
	}
	if tag != "" {
		opts = append(opts, strength.WithLocale(tag))
	}

	engine, err := strength.New(opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine, cleanup, nil
}

// inputs merges the -user flag with the configured user inputs.
func inputs(cfg *config.Config) []string {
	merged := append([]string{}, cfg.Engine.UserInputs...)
	if *userInputs != "" {
		for _, s := range strings.Split(*userInputs, ",") {
			if s = strings.TrimSpace(s); s != "" {
				merged = append(merged, s)
			}
		}
	}
	return merged
}

func cmdCheck(password string) {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Close()

	engine, cleanup, err := buildEngine(cfg)
	if err != nil {
		log.Error("engine construction failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	result := engine.Evaluate(password, inputs(cfg)...)
	if *scrub {
		result.Scrub()
	}
	emit(result)
}

func cmdBatch(path string) {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Close()

	engine, cleanup, err := buildEngine(cfg)
	if err != nil {
		log.Error("engine construction failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.Error("open batch input", "path", path, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	userIn := inputs(cfg)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		result := engine.Evaluate(line, userIn...)
		if *scrub {
			result.Scrub()
		}
		if *jsonOut {
			emitJSON(result)
		} else {
			emitBatchLine(result)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		log.Error("read batch input", "error", err)
		os.Exit(1)
	}
	log.Debug("batch complete", "count", n)
}

func cmdCompile(out string) {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Close()

	src := wordlist.Embedded()
	if cfg.Engine.WordlistDir != "" {
		src = wordlist.Dir(cfg.Engine.WordlistDir)
	}
	names := cfg.Engine.Dictionaries
	if len(names) == 0 {
		names = wordlist.DefaultNames()
	}

	if err := wordlist.Compile(out, src, names); err != nil {
		log.Error("compile word database", "path", out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Compiled %d dictionaries into %s\n", len(names), out)
}

func cmdLayouts() {
	cfg := loadConfig()

	graphs := layout.Builtin()
	for _, path := range cfg.Engine.LayoutFiles {
		g, err := layout.LoadCustom(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading layout %s: %v\n", path, err)
			os.Exit(1)
		}
		graphs = append(graphs, g)
	}

	emitLayouts(graphs)
}

func emit(result *strength.Result) {
	if *jsonOut {
		emitJSON(result)
		return
	}
	emitStyled(result)
}

func emitJSON(result *strength.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
}
