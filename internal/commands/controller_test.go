package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dcw/beanmaker/internal/codegen"
	"github.com/dcw/beanmaker/internal/config"
	"github.com/dcw/beanmaker/internal/schema"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(fields *schema.FieldTable) string {
	args := m.Called(fields)
	return args.String(0)
}

func (m *mockGenerator) Language() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockGenerator) FileExtension() string {
	args := m.Called()
	return args.String(0)
}

func boolPtr(b bool) *bool {
	return &b
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestController_Options(t *testing.T) {
	cfg := &config.Config{
		Class:   "cfg.Bean",
		Getters: true,
		Setters: true,
		Javadoc: false,
		Author:  "config-author",
	}

	tests := []struct {
		name  string
		flags Flags
		want  codegen.Options
	}{
		{
			name:  "config only",
			flags: Flags{},
			want: codegen.Options{
				TargetTypeName: "cfg.Bean",
				EmitAccessors:  true,
				EmitMutators:   true,
				Author:         "config-author",
			},
		},
		{
			name: "flags override config",
			flags: Flags{
				ClassName: "flag.Widget",
				Getters:   boolPtr(false),
				Javadoc:   boolPtr(true),
			},
			want: codegen.Options{
				TargetTypeName:    "flag.Widget",
				EmitAccessors:     false,
				EmitMutators:      true,
				EmitDocumentation: true,
				Author:            "config-author",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &Controller{Flags: &tt.flags, Logger: zerolog.Nop()}
			assert.Equal(t, tt.want, ctrl.Options(cfg))
		})
	}
}

func TestController_Generate(t *testing.T) {
	// Test: End-to-end generation through the Java generator
	tmpDir := t.TempDir()
	fieldsPath := writeFile(t, tmpDir, "widget.fields", "id int\nname string displayName # user's name\n")
	configPath := writeFile(t, tmpDir, config.FileName, "author: tester\n")

	var out bytes.Buffer
	ctrl := &Controller{
		Flags: &Flags{
			FieldsFile: fieldsPath,
			ClassName:  "pkg.Widget",
			Getters:    boolPtr(true),
			ConfigPath: configPath,
		},
		Out:    &out,
		Logger: zerolog.Nop(),
	}

	err := ctrl.Run(context.Background())
	require.NoError(t, err)

	code := out.String()
	assert.Contains(t, code, "package pkg;\n")
	assert.Contains(t, code, "public class Widget {")
	assert.Contains(t, code, "private final int id;")
	assert.Contains(t, code, "private final string displayName;")
	assert.Contains(t, code, "public int getId() {")
	assert.Contains(t, code, "public string getDisplayName() {")
	assert.NotContains(t, code, "public void set")
	assert.True(t, strings.HasSuffix(code, "    }\n}\n"))
}

func TestController_GenerateUsesFactory(t *testing.T) {
	// Test: Resolved options and the loaded table reach the generator
	tmpDir := t.TempDir()
	fieldsPath := writeFile(t, tmpDir, "bean.fields", "b int\na String\n")
	configPath := writeFile(t, tmpDir, config.FileName, "class: cfg.Bean\njavadoc: true\nauthor: tester\n")

	gen := &mockGenerator{}
	gen.On("Language").Return("mock")
	gen.On("Generate", mock.MatchedBy(func(fields *schema.FieldTable) bool {
		return assert.ObjectsAreEqual([]string{"a", "b"}, fields.Names())
	})).Return("generated\n")

	var gotOpts codegen.Options
	var out bytes.Buffer
	ctrl := &Controller{
		Flags:  &Flags{FieldsFile: fieldsPath, ConfigPath: configPath},
		Out:    &out,
		Logger: zerolog.Nop(),
		NewGenerator: func(opts codegen.Options) codegen.Generator {
			gotOpts = opts
			return gen
		},
	}

	require.NoError(t, ctrl.Generate(context.Background()))

	assert.Equal(t, "generated\n", out.String())
	assert.Equal(t, codegen.Options{
		TargetTypeName:    "cfg.Bean",
		EmitDocumentation: true,
		Author:            "tester",
	}, gotOpts)
	gen.AssertExpectations(t)
}

func TestController_FieldsFileFromConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "widget.fields", "id int\n")
	configPath := writeFile(t, tmpDir, config.FileName, "fields: widget.fields\nclass: Widget\nauthor: tester\n")

	var out bytes.Buffer
	ctrl := &Controller{
		Flags:  &Flags{ConfigPath: configPath},
		Out:    &out,
		Logger: zerolog.Nop(),
	}

	require.NoError(t, ctrl.Generate(context.Background()))
	assert.Contains(t, out.String(), "public class Widget {")
	assert.Contains(t, out.String(), "private final int id;")
}

func TestController_DefaultsWithoutConfig(t *testing.T) {
	// Test: With no config anywhere the built-in default class is used
	tmpDir := t.TempDir()
	fieldsPath := writeFile(t, tmpDir, "foo.fields", "id int\n")
	prevWd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	var out bytes.Buffer
	ctrl := &Controller{
		Flags:  &Flags{FieldsFile: fieldsPath},
		Out:    &out,
		Logger: zerolog.Nop(),
	}

	require.NoError(t, ctrl.Generate(context.Background()))
	assert.Contains(t, out.String(), "package org.dcw;\n")
	assert.Contains(t, out.String(), "public class FooBar {")
}

func TestController_GenerateErrors(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeFile(t, tmpDir, config.FileName, "author: tester\n")

	t.Run("missing fields flag", func(t *testing.T) {
		ctrl := &Controller{
			Flags:  &Flags{ConfigPath: configPath},
			Out:    &bytes.Buffer{},
			Logger: zerolog.Nop(),
		}

		err := ctrl.Generate(context.Background())
		assert.ErrorIs(t, err, schema.ErrFieldsFileRequired)
	})

	t.Run("unreadable fields file", func(t *testing.T) {
		var out bytes.Buffer
		ctrl := &Controller{
			Flags:  &Flags{ConfigPath: configPath, FieldsFile: filepath.Join(tmpDir, "missing.fields")},
			Out:    &out,
			Logger: zerolog.Nop(),
		}

		err := ctrl.Generate(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, out.String(), "nothing is emitted when the input cannot be read")
	})

	t.Run("bad config file", func(t *testing.T) {
		ctrl := &Controller{
			Flags:  &Flags{ConfigPath: filepath.Join(tmpDir, "nope.yaml")},
			Out:    &bytes.Buffer{},
			Logger: zerolog.Nop(),
		}

		err := ctrl.Generate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}
