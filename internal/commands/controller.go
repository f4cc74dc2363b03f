// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dcw/beanmaker/internal/codegen"
	"github.com/dcw/beanmaker/internal/codegen/java"
	"github.com/dcw/beanmaker/internal/config"
)

// Flags holds the command-line flags. Nil toggles were not given on the
// command line and fall back to the config file.
type Flags struct {
	FieldsFile string
	ClassName  string
	Getters    *bool
	Setters    *bool
	Javadoc    *bool
	ConfigPath string
	Watch      bool
}

// Controller runs generation for the parsed flags
type Controller struct {
	Flags  *Flags
	Out    io.Writer
	Logger zerolog.Logger

	// NewGenerator builds the class generator; defaults to the Java generator
	NewGenerator func(opts codegen.Options) codegen.Generator
}

// Run generates once, or keeps regenerating when watch mode is on
func (c *Controller) Run(ctx context.Context) error {
	if c.Flags.Watch {
		return c.Watch(ctx)
	}
	return c.Generate(ctx)
}

// loadConfig reads the explicit config file if one was given, otherwise the
// nearest beanmaker.yaml, otherwise the defaults.
func (c *Controller) loadConfig() (*config.Config, error) {
	if c.Flags.ConfigPath != "" {
		cfg, err := config.LoadConfigFromPath(c.Flags.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, root, err := config.LoadConfig()
	if errors.Is(err, config.ErrConfigNotFound) {
		c.Logger.Debug().Msg("no config file found, using defaults")
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c.Logger.Debug().Str("root", root).Msg("loaded config")
	return cfg, nil
}

// Options merges the flags over cfg
func (c *Controller) Options(cfg *config.Config) codegen.Options {
	opts := codegen.Options{
		TargetTypeName:    cfg.Class,
		EmitAccessors:     cfg.Getters,
		EmitMutators:      cfg.Setters,
		EmitDocumentation: cfg.Javadoc,
		Author:            cfg.Author,
	}

	if c.Flags.ClassName != "" {
		opts.TargetTypeName = c.Flags.ClassName
	}
	if c.Flags.Getters != nil {
		opts.EmitAccessors = *c.Flags.Getters
	}
	if c.Flags.Setters != nil {
		opts.EmitMutators = *c.Flags.Setters
	}
	if c.Flags.Javadoc != nil {
		opts.EmitDocumentation = *c.Flags.Javadoc
	}

	return opts
}

// fieldsFile returns the fields file from the flags, else from cfg
func (c *Controller) fieldsFile(cfg *config.Config) string {
	if c.Flags.FieldsFile != "" {
		return c.Flags.FieldsFile
	}
	return cfg.Fields
}

func (c *Controller) generator(opts codegen.Options) codegen.Generator {
	if c.NewGenerator != nil {
		return c.NewGenerator(opts)
	}
	return java.NewGenerator(opts)
}

func (c *Controller) output() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}
