package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"passrank/internal/config"
	"passrank/pkg/strength"
)

// replState holds the live engine, swapped atomically when the config
// file changes on disk.
type replState struct {
	mu      sync.RWMutex
	engine  *strength.Engine
	cleanup func()
	cfg     *config.Config
}

func (s *replState) swap(engine *strength.Engine, cleanup func(), cfg *config.Config) {
	s.mu.Lock()
	old := s.cleanup
	s.engine = engine
	s.cleanup = cleanup
	s.cfg = cfg
	s.mu.Unlock()
	if old != nil {
		old()
	}
}

func (s *replState) current() (*strength.Engine, *config.Config) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine, s.cfg
}

func cmdRepl() {
	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg)
	defer log.Close()

	engine, cleanup, err := buildEngine(cfg)
	if err != nil {
		log.Error("engine construction failed", "error", err)
		os.Exit(1)
	}

	state := &replState{}
	state.swap(engine, cleanup, cfg)
	defer func() {
		if state.cleanup != nil {
			state.cleanup()
		}
	}()

	if *configPath != "" {
		loader.OnChange(func(next *config.Config) {
			engine, cleanup, err := buildEngine(next)
			if err != nil {
				log.Warn("config reload failed, keeping previous engine", "error", err)
				return
			}
			state.swap(engine, cleanup, next)
			log.Info("config reloaded", "path", *configPath)
		})
		if err := loader.Watch(); err != nil {
			log.Warn("config watch unavailable", "error", err)
		} else {
			defer loader.Close()
		}
	}

	fmt.Println("passrank repl - type a password, :locale <tag> to switch locale, :quit to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if replCommand(line, state) {
				return
			}
			continue
		}

		engine, cfg := state.current()
		result := engine.Evaluate(line, inputs(cfg)...)
		if *scrub {
			result.Scrub()
		}
		emit(result)
	}
}

// replCommand handles colon-prefixed commands. Returns true to exit.
func replCommand(line string, state *replState) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":locale":
		if len(fields) < 2 {
			fmt.Println("Usage: :locale <tag>")
			return false
		}
		engine, _ := state.current()
		engine.SetLocale(fields[1])
		fmt.Printf("locale set to %s\n", fields[1])
	case ":help":
		fmt.Println("Commands: :locale <tag>, :quit")
	default:
		fmt.Printf("Unknown command: %s\n", fields[0])
	}
	return false
}
