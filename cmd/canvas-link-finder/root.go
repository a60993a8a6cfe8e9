/*
Copyright © 2024 paul <paul@denknerd.org>
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/fatih/structs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/toothbrush/canvas-link-finder/canvas"
	"gopkg.in/yaml.v2"
)

const defaultConfig = "~/.config/canvas-link-finder.yaml"

var (
	// Store the result of binding cobra flags
	Config       string
	ConfigActual string
	Debug        bool

	// Command to run to retrieve the Canvas API token
	AuthTokenCmd []string

	// Fallback when no token command is set: JSON credentials keyed by server type
	CredentialsFile string
	ServerType      string

	ServerURL string
	Timeout   time.Duration

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "canvas-link-finder",
	Short: "Find Google Docs/Drive/Forms links in Canvas course content",
	Long: `
Courses tend to accumulate links to Google Docs, Drive folders and Forms, often shared with settings
nobody remembers.  This tool walks the discussion topics of Canvas courses and reports every Google
link it finds, as CSV, a table or YAML.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("canvas-link-finder: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: "+defaultConfig+", respects CANVAS_LINK_FINDER_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringSliceVar(&AuthTokenCmd, "auth-token-cmd", []string{}, "shell command to retrieve the Canvas API token")
	rootCmd.PersistentFlags().StringVar(&CredentialsFile, "credentials-file", "", "JSON file of tokens keyed by server type (default: $"+canvas.CredentialsEnv+")")
	rootCmd.PersistentFlags().StringVar(&ServerType, "server-type", "", "key of the token to use from the credentials")
	rootCmd.PersistentFlags().StringVar(&ServerURL, "server-url", "", "your Canvas install, e.g. https://canvas.example.edu")
	rootCmd.PersistentFlags().DurationVar(&Timeout, "timeout", canvas.DefaultTimeout, "deadline for each Canvas request")
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := Config != ""
	if !explicit {
		// Did the user provide an ENV?
		if envConfig := os.Getenv("CANVAS_LINK_FINDER_CONFIG"); envConfig != "" {
			Config = envConfig
			explicit = true
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = defaultConfig
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("canvas-link-finder: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return fmt.Errorf("canvas-link-finder: specified config file does not exist: %w", err)
		}
		// flags alone are fine, too.
		debugLog("No config file at %s, using flags only.\n", ConfigActual)
		ConfigActual = ""
		return nil
	}

	yamlFile, err := os.ReadFile(ConfigActual)
	if err != nil {
		return fmt.Errorf("canvas-link-finder: error reading config file: %w", err)
	}

	// I'd like to bark if a user sets a flag we don't recognise:
	if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
		return fmt.Errorf("canvas-link-finder: issue parsing config file: %w", err)
	}

	if err := bindFlags(cmd, ParsedConfig); err != nil {
		return fmt.Errorf("canvas-link-finder: failed to bind flags: %w", err)
	}

	return nil
}

type YamlConfig struct {
	WithVCR *bool `yaml:"with-vcr"`
	PerPage *int  `yaml:"per-page"`

	ServerURL       string   `yaml:"server-url"`
	ServerType      string   `yaml:"server-type"`
	CredentialsFile string   `yaml:"credentials-file"`
	AuthTokenCmd    []string `yaml:"auth-token-cmd"`
	Timeout         string   `yaml:"timeout"`

	Courses       []string `yaml:"courses"`
	Output        string   `yaml:"output"`
	Format        string   `yaml:"format"`
	DumpDir       string   `yaml:"dump-dir"`
	ProviderHosts []string `yaml:"provider-host"`
}

// Copy each value from the config file into its cobra flag, unless the flag was given on the
// command line.
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("canvas-link-finder: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// e.g. `list topics` has no --format, but the config file may well set it.
			continue
		}
		if cmd.Flags().Changed(key) {
			continue
		}

		switch field.Kind() {
		case reflect.Ptr:
			switch p := field.Value().(type) {
			case *bool:
				if p != nil {
					if err := cmd.Flags().Set(key, fmt.Sprintf("%v", *p)); err != nil {
						return fmt.Errorf("canvas-link-finder: bad value for %s: %w", key, err)
					}
				}
			case *int:
				if p != nil {
					if err := cmd.Flags().Set(key, fmt.Sprintf("%d", *p)); err != nil {
						return fmt.Errorf("canvas-link-finder: bad value for %s: %w", key, err)
					}
				}
			default:
				return fmt.Errorf("canvas-link-finder: found unrecognised field: %+v", field)
			}

		case reflect.String:
			s, ok := field.Value().(string)
			if !ok {
				return fmt.Errorf("canvas-link-finder: found unrecognised field: %+v", field)
			}
			if s != "" {
				if err := cmd.Flags().Set(key, s); err != nil {
					return fmt.Errorf("canvas-link-finder: bad value for %s: %w", key, err)
				}
			}

		case reflect.Slice:
			ss, ok := field.Value().([]string)
			if !ok {
				return fmt.Errorf("canvas-link-finder: found unrecognised field: %+v", field)
			}
			for _, s := range ss {
				// yes, repeatedly calling Set() appends to the slice...
				if err := cmd.Flags().Set(key, s); err != nil {
					return fmt.Errorf("canvas-link-finder: bad value for %s: %w", key, err)
				}
			}

		default:
			return fmt.Errorf("canvas-link-finder: found unrecognised field: %+v", field)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("canvas-link-finder: execution error: %w", err)
	}

	return nil
}
