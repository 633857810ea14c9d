package rules

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
)

// SliceGraph is the dependency graph between slices, keyed "layer/slice".
// Each edge remembers the first import that created it.
type SliceGraph struct {
	Edges map[string]map[string]domain.ImportStatement

	// order is the discovery rank of each edge, keyed "from→to".
	order map[string]int
}

func edgeKey(from, to string) string {
	return from + "→" + to
}

func sliceKey(layer domain.Layer, slice string) string {
	return string(layer) + "/" + slice
}

// BuildSliceGraph resolves every relative import against the file system and
// records an edge between the declaring slice and the target slice. Imports
// that do not resolve, leave src/, or stay inside one slice add no edge.
func BuildSliceGraph(imports []domain.ImportStatement, projectRoot string) *SliceGraph {
	g := &SliceGraph{
		Edges: make(map[string]map[string]domain.ImportStatement),
		order: make(map[string]int),
	}

	for _, imp := range imports {
		if !imp.IsRelative || imp.Layer == "" || imp.Slice == "" {
			continue
		}

		target, ok := fsd.ResolveImport(imp.Source, imp.File, projectRoot)
		if !ok {
			continue
		}
		to := fsd.ParsePath(target, projectRoot)
		if to.Layer == "" || to.Slice == "" {
			continue
		}

		from := sliceKey(imp.Layer, imp.Slice)
		dest := sliceKey(to.Layer, to.Slice)
		if from == dest {
			continue
		}

		if g.Edges[from] == nil {
			g.Edges[from] = make(map[string]domain.ImportStatement)
		}
		if _, exists := g.Edges[from][dest]; !exists {
			g.Edges[from][dest] = imp
			g.order[edgeKey(from, dest)] = len(g.order)
		}
	}

	return g
}

// DetectCycles finds slice cycles using DFS with grey/black coloring.
// Each cycle is rotated to start at its smallest key and reported once.
func (g *SliceGraph) DetectCycles() [][]string {
	if g == nil || len(g.Edges) == 0 {
		return nil
	}

	const (
		white = 0
		grey  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)
	seen := make(map[string]bool)
	var cycles [][]string

	keys := make([]string, 0, len(g.Edges))
	for k := range g.Edges {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dfs func(u string)
	dfs = func(u string) {
		color[u] = grey

		neighbors := make([]string, 0, len(g.Edges[u]))
		for v := range g.Edges[u] {
			neighbors = append(neighbors, v)
		}
		sort.Strings(neighbors)

		for _, v := range neighbors {
			switch color[v] {
			case grey:
				cycle := []string{v}
				for cur := u; cur != v; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}

				normalized := normalizeCycle(cycle)
				key := strings.Join(normalized, "→")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, normalized)
				}
			case white:
				parent[v] = u
				dfs(v)
			}
		}
		color[u] = black
	}

	for _, k := range keys {
		if color[k] == white {
			dfs(k)
		}
	}

	return cycles
}

// normalizeCycle rotates a cycle so the lexicographically smallest element is first.
func normalizeCycle(cycle []string) []string {
	if len(cycle) == 0 {
		return cycle
	}
	minIdx := 0
	for i, s := range cycle {
		if s < cycle[minIdx] {
			minIdx = i
		}
	}
	result := make([]string, len(cycle))
	for i := range cycle {
		result[i] = cycle[(minIdx+i)%len(cycle)]
	}
	return result
}

// firstEdge returns the import behind the earliest discovered edge of cycle.
// Edges without a recorded rank lose to ranked ones; ties go to the edge
// leaving the first node.
func (g *SliceGraph) firstEdge(cycle []string) domain.ImportStatement {
	var first domain.ImportStatement
	best := math.MaxInt
	for i, from := range cycle {
		to := cycle[(i+1)%len(cycle)]
		rank, ok := g.order[edgeKey(from, to)]
		if !ok {
			rank = math.MaxInt - 1
		}
		if rank < best {
			best = rank
			first = g.Edges[from][to]
		}
	}
	return first
}

// CircularDependencies reports one error per dependency cycle between slices.
// The violation points at the first import, in scan order, that declares an
// edge of the cycle.
func CircularDependencies(imports []domain.ImportStatement, projectRoot string) []domain.Violation {
	g := BuildSliceGraph(imports, projectRoot)

	var violations []domain.Violation
	for _, cycle := range g.DetectCycles() {
		opener := g.firstEdge(cycle)
		path := strings.Join(append(append([]string{}, cycle...), cycle[0]), " → ")
		violations = append(violations, domain.Violation{
			Type:       domain.ViolationCircularDependency,
			Severity:   domain.SeverityError,
			Message:    fmt.Sprintf("Circular dependency between slices: %s", path),
			File:       opener.File,
			Line:       opener.Line,
			Suggestion: "Break the cycle by moving the shared code to a lower layer or inverting one of the dependencies",
		})
	}
	return violations
}
