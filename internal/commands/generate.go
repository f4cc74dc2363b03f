package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/dcw/beanmaker/internal/codegen"
	"github.com/dcw/beanmaker/internal/schema"
)

// Generate loads the fields file and writes the generated class to the output
func (c *Controller) Generate(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	return c.generate(c.fieldsFile(cfg), c.Options(cfg))
}

// generate runs one load-and-emit pass
func (c *Controller) generate(path string, opts codegen.Options) error {
	fields, err := schema.LoadFile(path)
	if err != nil {
		return err
	}

	gen := c.generator(opts)
	c.Logger.Debug().
		Str("fields_file", path).
		Int("fields", fields.Len()).
		Str("class", opts.TargetTypeName).
		Str("language", gen.Language()).
		Msg("generating class")

	if _, err := io.WriteString(c.output(), gen.Generate(fields)); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}

	return nil
}
