// Package fill closes boundary loops with a centroid-fan triangulation,
// and provides a T-junction fallback for boundary configurations the
// loop finder cannot close into a simple cycle.
package fill

import "github.com/kilnforge/meshrepair/types"

// Loop triangulates a single loop of length n >= 3 by centroid fan.
//
// A length-3 loop is emitted directly as one triangle with no new
// vertex. Longer loops get one new vertex appended to vertices at the
// loop's centroid, fanned with the loop's n boundary edges into n
// triangles. Returns the (possibly extended) vertex slice and the new
// triangles; it never mutates the input slice in place.
func Loop(vertices []types.Point, loop types.Loop) ([]types.Point, []types.Triangle) {
	n := loop.Len()
	if n < 3 {
		return vertices, nil
	}

	if n == 3 {
		return vertices, []types.Triangle{{loop[0], loop[1], loop[2]}}
	}

	centroid := types.Point{}
	for _, v := range loop {
		centroid = centroid.Add(vertices[v])
	}
	centroid = centroid.Scale(1 / float64(n))

	outVertices := append(append([]types.Point(nil), vertices...), centroid)
	centroidID := types.VertexID(len(vertices))

	triangles := make([]types.Triangle, n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		triangles[i] = types.Triangle{loop[i], loop[next], centroidID}
	}

	return outVertices, triangles
}

// TJunction scans the given boundary half-edges for a vertex with at
// least two outgoing half-edges, and failing that a vertex with at least
// two incoming half-edges, and emits a single triangle splicing the pair
// together. It returns ok=false if no such vertex exists.
//
// The emitted triangle's winding is not guaranteed consistent with the
// surrounding surface; this is an acceptable tradeoff for making
// progress on an otherwise-unfillable boundary.
func TJunction(halfEdges []types.HalfEdge) (types.Triangle, bool) {
	outgoing := make(map[types.VertexID][]types.VertexID)
	incoming := make(map[types.VertexID][]types.VertexID)
	var order, inOrder []types.VertexID
	seen := make(map[types.VertexID]bool)
	inSeen := make(map[types.VertexID]bool)

	for _, he := range halfEdges {
		if !seen[he.From()] {
			seen[he.From()] = true
			order = append(order, he.From())
		}
		if !inSeen[he.To()] {
			inSeen[he.To()] = true
			inOrder = append(inOrder, he.To())
		}
		outgoing[he.From()] = append(outgoing[he.From()], he.To())
		incoming[he.To()] = append(incoming[he.To()], he.From())
	}

	for _, v := range order {
		if outs := outgoing[v]; len(outs) >= 2 {
			return types.Triangle{v, outs[1], outs[0]}, true
		}
	}

	for _, v := range inOrder {
		if ins := incoming[v]; len(ins) >= 2 {
			return types.Triangle{v, ins[0], ins[1]}, true
		}
	}

	return types.Triangle{}, false
}
