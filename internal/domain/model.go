package domain

import "time"

// Layer is one of the seven architectural tiers of Feature-Sliced Design.
type Layer string

const (
	LayerApp       Layer = "app"
	LayerProcesses Layer = "processes"
	LayerPages     Layer = "pages"
	LayerWidgets   Layer = "widgets"
	LayerFeatures  Layer = "features"
	LayerEntities  Layer = "entities"
	LayerShared    Layer = "shared"
)

// Layers lists every layer from the most specific (app) to the most generic (shared).
var Layers = []Layer{
	LayerApp,
	LayerProcesses,
	LayerPages,
	LayerWidgets,
	LayerFeatures,
	LayerEntities,
	LayerShared,
}

// layerOrder is the distance of each layer from the app. A layer may only
// depend on layers with a greater or equal order.
var layerOrder = map[Layer]int{
	LayerApp:       0,
	LayerProcesses: 1,
	LayerPages:     2,
	LayerWidgets:   3,
	LayerFeatures:  4,
	LayerEntities:  5,
	LayerShared:    6,
}

// ParseLayer returns the layer named s, or false if s is not a layer name.
func ParseLayer(s string) (Layer, bool) {
	l := Layer(s)
	_, ok := layerOrder[l]
	return l, ok
}

// Order returns the layer's position in the hierarchy, or -1 for unknown layers.
func (l Layer) Order() int {
	if o, ok := layerOrder[l]; ok {
		return o
	}
	return -1
}

// SliceLayers are the layers whose slices must expose a public API.
var SliceLayers = []Layer{LayerFeatures, LayerEntities, LayerWidgets}

// Segment is a horizontal concern inside a slice.
type Segment string

const (
	SegmentUI     Segment = "ui"
	SegmentModel  Segment = "model"
	SegmentAPI    Segment = "api"
	SegmentLib    Segment = "lib"
	SegmentConfig Segment = "config"
	SegmentTypes  Segment = "types"
)

// Segments enumerates all recognized segment names.
var Segments = []Segment{
	SegmentUI,
	SegmentModel,
	SegmentAPI,
	SegmentLib,
	SegmentConfig,
	SegmentTypes,
}

func IsSegment(s string) bool {
	for _, seg := range Segments {
		if string(seg) == s {
			return true
		}
	}
	return false
}

// FSDPath is the architectural position of a path under src/.
// Empty fields mean the position could not be determined.
type FSDPath struct {
	Layer   Layer  `json:"layer,omitempty"`
	Slice   string `json:"slice,omitempty"`
	Segment string `json:"segment,omitempty"`
}

// ImportStatement is one static import edge found in a source file.
// Line is the 1-based line holding the import keyword; a multi-line import
// clause is attributed to its first line.
type ImportStatement struct {
	Source     string `json:"source"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	IsRelative bool   `json:"is_relative"`

	// Filled in by the auditor after extraction.
	Layer   Layer  `json:"layer,omitempty"`
	Slice   string `json:"slice,omitempty"`
	Segment string `json:"segment,omitempty"`
}

// Annotate returns a copy of the import carrying the classification of its declaring file.
func (i ImportStatement) Annotate(p FSDPath) ImportStatement {
	i.Layer = p.Layer
	i.Slice = p.Slice
	i.Segment = p.Segment
	return i
}

// ViolationType is the kind of architecture problem a violation reports.
type ViolationType string

const (
	ViolationCrossLayerImport    ViolationType = "CROSS_LAYER_IMPORT"
	ViolationSharedImportsLayer  ViolationType = "SHARED_IMPORTS_LAYER"
	ViolationCrossFeatureImport  ViolationType = "CROSS_FEATURE_IMPORT"
	ViolationDirectSegmentImport ViolationType = "DIRECT_SEGMENT_IMPORT"
	ViolationMissingPublicAPI    ViolationType = "MISSING_PUBLIC_API"
	ViolationCircularDependency  ViolationType = "CIRCULAR_DEPENDENCY"
	ViolationInvalidLayer        ViolationType = "INVALID_LAYER"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Violation is one detected architecture problem.
type Violation struct {
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Message     string        `json:"message"`
	File        string        `json:"file"`
	Line        int           `json:"line,omitempty"`
	Suggestion  string        `json:"suggestion,omitempty"`
	AutoFixable bool          `json:"auto_fixable,omitempty"`
}

// AuditSummary counts violations per severity.
type AuditSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Summarize counts the violations by severity.
func Summarize(violations []Violation) AuditSummary {
	var s AuditSummary
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		}
	}
	return s
}

// Passes reports whether a run with this summary passes.
// Strict mode also fails on warnings.
func (s AuditSummary) Passes(strict bool) bool {
	if strict {
		return s.Errors == 0 && s.Warnings == 0
	}
	return s.Errors == 0
}

// AuditResult is the outcome of a single audit run.
type AuditResult struct {
	Passed     bool         `json:"passed"`
	TotalFiles int          `json:"total_files"`
	Violations []Violation  `json:"violations"`
	Summary    AuditSummary `json:"summary"`
	ScannedAt  time.Time    `json:"scanned_at"`
}

// NewAuditResult builds a result from the violations of a run.
func NewAuditResult(totalFiles int, violations []Violation, strict bool, scannedAt time.Time) *AuditResult {
	if violations == nil {
		violations = []Violation{}
	}
	summary := Summarize(violations)
	return &AuditResult{
		Passed:     summary.Passes(strict),
		TotalFiles: totalFiles,
		Violations: violations,
		Summary:    summary,
		ScannedAt:  scannedAt,
	}
}

// ViolationGroup holds the violations attributed to one file.
type ViolationGroup struct {
	File       string      `json:"file"`
	Violations []Violation `json:"violations"`
}

// Groups groups violations by file. Files appear in the order of their first
// violation and each group keeps the original violation order.
func (r *AuditResult) Groups() []ViolationGroup {
	var groups []ViolationGroup
	index := make(map[string]int)
	for _, v := range r.Violations {
		i, ok := index[v.File]
		if !ok {
			i = len(groups)
			index[v.File] = i
			groups = append(groups, ViolationGroup{File: v.File})
		}
		groups[i].Violations = append(groups[i].Violations, v)
	}
	return groups
}

// CountByType returns how many violations of type t the result holds.
func (r *AuditResult) CountByType(t ViolationType) int {
	n := 0
	for _, v := range r.Violations {
		if v.Type == t {
			n++
		}
	}
	return n
}
