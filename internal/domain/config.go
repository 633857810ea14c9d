package domain

import "fmt"

// Template identifies the project skeleton created by init.
type Template string

const (
	TemplateNextApp   Template = "next-app"
	TemplateFastAPI   Template = "fastapi"
	TemplateFullstack Template = "fullstack"
)

// ValidTemplates enumerates all recognized project templates.
var ValidTemplates = []Template{TemplateNextApp, TemplateFastAPI, TemplateFullstack}

// ValidNamings enumerates the accepted naming conventions.
var ValidNamings = []string{"kebab-case", "camelCase", "PascalCase"}

// ValidLocales enumerates the accepted output locales.
var ValidLocales = []string{"en", "pt-BR"}

// ProjectConfig holds project-level configuration loaded from .fsdcoach.yaml
// or one of the legacy JSON rc files. Keys are camelCase so the JSON files
// written by earlier releases keep loading.
type ProjectConfig struct {
	Template        Template        `yaml:"template,omitempty"        json:"template,omitempty"`
	DefaultSegments DefaultSegments `yaml:"defaultSegments,omitempty" json:"defaultSegments,omitempty"`
	RootDir         RootDirs        `yaml:"rootDir,omitempty"         json:"rootDir,omitempty"`
	Naming          string          `yaml:"naming,omitempty"          json:"naming,omitempty"`
	Lint            LintConfig      `yaml:"lint,omitempty"            json:"lint,omitempty"`
	Locale          string          `yaml:"locale,omitempty"          json:"locale,omitempty"`
}

// DefaultSegments lists the segments created for new slices per layer.
type DefaultSegments struct {
	Features []string `yaml:"features,omitempty" json:"features,omitempty"`
	Entities []string `yaml:"entities,omitempty" json:"entities,omitempty"`
	Widgets  []string `yaml:"widgets,omitempty"  json:"widgets,omitempty"`
}

// RootDirs maps slice layers to their directory relative to the project root.
type RootDirs struct {
	Features string `yaml:"features,omitempty" json:"features,omitempty"`
	Entities string `yaml:"entities,omitempty" json:"entities,omitempty"`
	Widgets  string `yaml:"widgets,omitempty"  json:"widgets,omitempty"`
}

// LintConfig controls the audit. Pointer types distinguish "not specified"
// from false.
type LintConfig struct {
	Strict            *bool `yaml:"strict,omitempty"            json:"strict,omitempty"`
	EnforcePublicAPI  *bool `yaml:"enforcePublicApi,omitempty"  json:"enforcePublicApi,omitempty"`
	CheckCircularDeps *bool `yaml:"checkCircularDeps,omitempty" json:"checkCircularDeps,omitempty"`
}

func boolPtr(b bool) *bool { return &b }

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Template: TemplateNextApp,
		DefaultSegments: DefaultSegments{
			Features: []string{"ui", "model", "api"},
			Entities: []string{"model", "ui"},
			Widgets:  []string{"ui", "model"},
		},
		RootDir: RootDirs{
			Features: "src/features",
			Entities: "src/entities",
			Widgets:  "src/widgets",
		},
		Naming: "kebab-case",
		Lint: LintConfig{
			Strict:            boolPtr(false),
			EnforcePublicAPI:  boolPtr(true),
			CheckCircularDeps: boolPtr(false),
		},
		Locale: "en",
	}
}

// Merge overlays the explicitly set values of override on top of base.
func Merge(base, override ProjectConfig) ProjectConfig {
	result := base

	if override.Template != "" {
		result.Template = override.Template
	}
	if len(override.DefaultSegments.Features) > 0 {
		result.DefaultSegments.Features = override.DefaultSegments.Features
	}
	if len(override.DefaultSegments.Entities) > 0 {
		result.DefaultSegments.Entities = override.DefaultSegments.Entities
	}
	if len(override.DefaultSegments.Widgets) > 0 {
		result.DefaultSegments.Widgets = override.DefaultSegments.Widgets
	}
	if override.RootDir.Features != "" {
		result.RootDir.Features = override.RootDir.Features
	}
	if override.RootDir.Entities != "" {
		result.RootDir.Entities = override.RootDir.Entities
	}
	if override.RootDir.Widgets != "" {
		result.RootDir.Widgets = override.RootDir.Widgets
	}
	if override.Naming != "" {
		result.Naming = override.Naming
	}
	if override.Lint.Strict != nil {
		result.Lint.Strict = override.Lint.Strict
	}
	if override.Lint.EnforcePublicAPI != nil {
		result.Lint.EnforcePublicAPI = override.Lint.EnforcePublicAPI
	}
	if override.Lint.CheckCircularDeps != nil {
		result.Lint.CheckCircularDeps = override.Lint.CheckCircularDeps
	}
	if override.Locale != "" {
		result.Locale = override.Locale
	}

	return result
}

// StrictLint reports whether lint.strict is enabled.
func (c ProjectConfig) StrictLint() bool {
	return c.Lint.Strict != nil && *c.Lint.Strict
}

// EnforcesPublicAPI reports whether slices must expose an index file. Defaults to true.
func (c ProjectConfig) EnforcesPublicAPI() bool {
	return c.Lint.EnforcePublicAPI == nil || *c.Lint.EnforcePublicAPI
}

// ChecksCircularDeps reports whether the circular-dependency rule is enabled.
func (c ProjectConfig) ChecksCircularDeps() bool {
	return c.Lint.CheckCircularDeps != nil && *c.Lint.CheckCircularDeps
}

// SegmentsFor returns the configured default segments for a slice layer.
func (c ProjectConfig) SegmentsFor(layer Layer) []string {
	switch layer {
	case LayerFeatures:
		return c.DefaultSegments.Features
	case LayerEntities:
		return c.DefaultSegments.Entities
	case LayerWidgets:
		return c.DefaultSegments.Widgets
	}
	return nil
}

// RootDirFor returns the configured directory for a slice layer.
func (c ProjectConfig) RootDirFor(layer Layer) string {
	switch layer {
	case LayerFeatures:
		return c.RootDir.Features
	case LayerEntities:
		return c.RootDir.Entities
	case LayerWidgets:
		return c.RootDir.Widgets
	}
	return ""
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Template != "" && !containsTemplate(ValidTemplates, c.Template) {
		return fmt.Errorf("unknown template %q (valid: next-app, fastapi, fullstack)", c.Template)
	}

	if c.Naming != "" && !containsString(ValidNamings, c.Naming) {
		return fmt.Errorf("unknown naming %q (valid: kebab-case, camelCase, PascalCase)", c.Naming)
	}

	if c.Locale != "" && !containsString(ValidLocales, c.Locale) {
		return fmt.Errorf("unknown locale %q (valid: en, pt-BR)", c.Locale)
	}

	lists := map[string][]string{
		"defaultSegments.features": c.DefaultSegments.Features,
		"defaultSegments.entities": c.DefaultSegments.Entities,
		"defaultSegments.widgets":  c.DefaultSegments.Widgets,
	}
	for _, key := range []string{"defaultSegments.features", "defaultSegments.entities", "defaultSegments.widgets"} {
		for _, seg := range lists[key] {
			if !IsSegment(seg) {
				return fmt.Errorf("unknown segment %q in %s", seg, key)
			}
		}
	}

	return nil
}

func containsTemplate(list []Template, t Template) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
