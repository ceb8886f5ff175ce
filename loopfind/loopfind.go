// Package loopfind discovers simple directed cycles in a boundary
// half-edge graph.
//
// This is a heuristic, not a complete cycle decomposition. A half-edge is
// marked used the moment it is taken as a DFS step, and that mark is
// never cleared, even if the branch it was taken on ultimately fails to
// close a cycle. A complete implementation would backtrack and unmark;
// this one deliberately does not, matching the reference behavior this
// package is ported from. The practical effect is that some boundary
// half-edges can be "stranded" — left unused after a failed search — on
// complex boundary graphs. Callers (see package repair) compensate with a
// T-junction fallback and a stuck detector rather than relying on this
// package to consume every half-edge.
package loopfind

import (
	"sort"

	"github.com/kilnforge/meshrepair/types"
)

// MaxPathLength bounds the DFS search path to guard against pathological
// boundary graphs.
const MaxPathLength = 300

type adjEntry struct {
	target  types.VertexID
	edgeIdx int
}

// Find returns the simple loops discoverable in halfEdges, sorted by
// ascending length, using the default MaxPathLength search cap.
func Find(halfEdges []types.HalfEdge) []types.Loop {
	return FindWithCap(halfEdges, MaxPathLength)
}

// FindWithCap is Find with an overridable search path cap, letting
// callers (see package repair's Option) trade thoroughness for bounded
// runtime on pathological inputs.
//
// Each returned loop's half-edges are disjoint from every other returned
// loop's, and from the set of half-edges the search failed to close
// (those are simply omitted — not every half-edge need appear in the
// result).
func FindWithCap(halfEdges []types.HalfEdge, pathCap int) []types.Loop {
	if pathCap <= 0 {
		pathCap = MaxPathLength
	}

	out := make(map[types.VertexID][]adjEntry)
	for i, he := range halfEdges {
		out[he.From()] = append(out[he.From()], adjEntry{target: he.To(), edgeIdx: i})
	}

	used := make([]bool, len(halfEdges))
	var loops []types.Loop

	for i, he := range halfEdges {
		if used[i] {
			continue
		}
		used[i] = true
		if loop, ok := searchCycle(he, out, used, pathCap); ok {
			loops = append(loops, loop)
		}
	}

	sort.SliceStable(loops, func(a, b int) bool { return len(loops[a]) < len(loops[b]) })
	return loops
}

type frame struct {
	vertex  types.VertexID
	nextIdx int
}

// searchCycle explores forward from start.To(), looking for a path back
// to start.From(). It uses an explicit stack rather than recursion so the
// 300-vertex cap is a simple length check rather than a recursion-depth
// concern.
func searchCycle(start types.HalfEdge, out map[types.VertexID][]adjEntry, used []bool, pathCap int) (types.Loop, bool) {
	source := start.From()

	path := []types.VertexID{source, start.To()}
	inPath := map[types.VertexID]bool{source: true, start.To(): true}
	stack := []*frame{{vertex: start.To()}}

	for len(stack) > 0 {
		if len(path) > pathCap {
			return nil, false
		}

		top := stack[len(stack)-1]
		entries := out[top.vertex]

		advanced := false
		for top.nextIdx < len(entries) {
			entry := entries[top.nextIdx]
			top.nextIdx++

			if used[entry.edgeIdx] {
				continue
			}

			if entry.target == source {
				if len(path) < 3 {
					continue
				}
				used[entry.edgeIdx] = true
				return types.NewLoop(path...), true
			}

			if inPath[entry.target] {
				// Taking this edge would make the path non-simple; leave
				// it unmarked since it was never actually stepped onto.
				continue
			}

			used[entry.edgeIdx] = true
			path = append(path, entry.target)
			inPath[entry.target] = true
			stack = append(stack, &frame{vertex: entry.target})
			advanced = true
			break
		}

		if advanced {
			continue
		}

		// Exhausted this vertex's outgoing edges: backtrack without
		// unmarking anything we already took.
		stack = stack[:len(stack)-1]
		path = path[:len(path)-1]
		delete(inPath, top.vertex)
	}

	return nil, false
}
