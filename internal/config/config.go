// Package config resolves solver tuning knobs — transposition table
// size, weak/strong default, opening-book path — from flags, environment
// variables, and an optional YAML file, the same layered precedence
// viper gives the rest of the pack's CLI tools.
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/connect4lab/solver/internal/ttable"
)

// Config is the resolved set of solver tuning knobs.
type Config struct {
	// TableLog2Size is the log2 transposition-table size resolved from
	// the layers below. No command passes it on: solver.New always sizes
	// its table at nextPrime(2^ttable.DefaultLog2Size) slots.
	TableLog2Size int
	// Weak selects weak-mode solving by default.
	Weak bool
	// BookPath is the directory of the badger-backed opening-book cache,
	// or empty to run without one.
	BookPath string
}

const (
	keyTableLog2Size = "table.log2size"
	keyWeak          = "solve.weak"
	keyBookPath      = "book.path"

	envPrefix = "C4SOLVER"
)

// defaults mirror the solver package's own defaults so a Config built
// with no flags, env, or file behaves identically to calling solver.New
// directly.
func defaults() map[string]any {
	return map[string]any{
		keyTableLog2Size: ttable.DefaultLog2Size,
		keyWeak:          false,
		keyBookPath:      "",
	}
}

// Load resolves a Config from, in ascending precedence: built-in
// defaults, an optional YAML file at configPath (ignored if empty or
// absent), environment variables prefixed C4SOLVER_, and flags already
// registered on fs (via BindFlags).
func Load(configPath string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	for key, val := range defaults() {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(statErr) {
			return Config{}, statErr
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, err
		}
	}

	return Config{
		TableLog2Size: v.GetInt(keyTableLog2Size),
		Weak:          v.GetBool(keyWeak),
		BookPath:      v.GetString(keyBookPath),
	}, nil
}

// BindFlags registers the flags Load will later read via fs, named after
// the dotted config keys (--table.log2size, --solve.weak, --book.path).
func BindFlags(fs *pflag.FlagSet) {
	fs.Int(keyTableLog2Size, ttable.DefaultLog2Size, "log2 of the transposition table size (not applied: the solver uses its default size)")
	fs.Bool(keyWeak, false, "solve in weak mode (sign only)")
	fs.String(keyBookPath, "", "directory of the badger opening-book cache")
}
