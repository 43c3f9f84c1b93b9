package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"famtree/kin/internal/config"
	"famtree/kin/internal/family"
	"github.com/spf13/cobra"
)

// EnvFile overrides family document discovery
const EnvFile = "KIN_FILE"

// documentNames are searched for, in order, while walking up from CWD
var documentNames = []string{"family.json", "family.yaml", "family.yml"}

var (
	filePath string
	verbose  bool
	cfg      = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "kin",
	Short: "Resolve ancestors and descendants from a family document",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		loaded, err := config.LoadOrDefault(wd)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "Path to family document (.json or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")
}

// DiscoverFile finds the family document using priority:
// env > flag > config file > walk-up from CWD
func DiscoverFile() (string, error) {
	// 1. Environment variable
	if envPath := os.Getenv(EnvFile); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// 2. CLI flag
	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			return filePath, nil
		}
		return "", fmt.Errorf("family document not found at --file path: %s", filePath)
	}

	// 3. Config file
	if cfg != nil && cfg.File != "" {
		if _, err := os.Stat(cfg.File); err == nil {
			return cfg.File, nil
		}
		return "", fmt.Errorf("family document from %s not found: %s", config.FileName, cfg.File)
	}

	// 4. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			for _, name := range documentNames {
				candidate := filepath.Join(dir, name)
				if _, err := os.Stat(candidate); err == nil {
					return candidate, nil
				}
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("no family document found (set %s, use --file, or run from a directory containing family.json)", EnvFile)
}

// LoadFamily discovers and decodes the family document
func LoadFamily() (*family.Collection, error) {
	path, err := DiscoverFile()
	if err != nil {
		return nil, err
	}
	c, err := family.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logf("loaded %d people from %s", c.Len(), path)
	return c, nil
}

// ParseID parses a person id argument, accepting an optional leading '#'
func ParseID(arg string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid person id '%s'", arg)
	}
	return id, nil
}

func logf(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "[kin] "+format+"\n", args...)
}

func truncName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Drop a trailing partial rune left by the cut
	truncated := s[:max]
	for len(truncated) > 0 {
		r, size := utf8.DecodeLastRuneInString(truncated)
		if r != utf8.RuneError || size > 1 {
			break
		}
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "..."
}
