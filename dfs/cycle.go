// Cycle detection for directed and undirected graphs. DetectCycles
// enumerates all simple cycles using depth-first search with three-color
// marking and back-edge detection. Each cycle is canonicalized to its
// lexicographically smallest rotation (and, when undirected, the smaller
// of its two directions) so duplicates collapse to one entry. The final
// cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L²)  (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/klassika/klassika/graph"
)

// DetectCycles inspects graph g for all simple cycles.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a neighbor-fetch error occurs, returns (false, nil, error).
func DetectCycles(g *graph.Graph) (bool, [][]string, error) {
	// 1) Validate input graph
	if g == nil {
		return false, nil, ErrGraphNil
	}

	// 2) Prepare visitation state:
	//    White=0 (unvisited), Gray=1 (on current path), Black=2 (completed)
	verts := g.Vertices()                         // sorted list of vertex IDs
	state := make(map[string]int, len(verts))     // tracks visitation state per vertex
	path := make([]string, 0, len(verts))         // current DFS path (stack) for cycle reconstruction
	seen := make(map[string]struct{}, len(verts)) // deduplication set for cycle signatures
	var cycles [][]string                         // collected distinct cycles

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if state[v] == White {
			if err := dfsVisit(g, v, "", state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// 4) Sort the collected cycles element-wise for deterministic output
	slices.SortFunc(cycles, func(a, b []string) int {
		return slices.Compare(a, b)
	})

	// 5) Return whether any cycles were found
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex id, tracking parent to skip
// trivial back-edges. Any Gray→Gray back-edge it encounters closes a cycle,
// which is recorded into cycles after canonicalization.
//
// Returns an error if neighbor iteration fails.
func dfsVisit(
	g *graph.Graph,
	id, parent string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	// 1) Mark current vertex as Gray (in progress)
	state[id] = Gray

	// 2) Push id onto the DFS path stack for later cycle reconstruction
	*path = append(*path, id)

	// 3) Retrieve neighbors; propagate any lookup error upward
	nbs, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	// 4) Explore each neighbor of id
	for _, nbr := range nbs {
		// 4a) Trivial backtrack in an undirected graph: skip the edge
		//     straight back to parent. Set semantics rule out a second
		//     parallel edge, so this can never hide a real 2-cycle.
		if !g.Directed() && nbr == parent {
			continue
		}

		// 4b) Examine neighbor's visitation state
		switch state[nbr] {
		case White:
			// Unvisited: recurse deeper
			if err = dfsVisit(g, nbr, id, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			// Back-edge Gray→Gray closes a cycle (a self-loop closes
			// the one-vertex cycle [v v]): record it.
			recordCycle(nbr, *path, g.Directed(), seen, cycles)
		}
	}

	// 5) Backtrack: pop id from the path stack and mark it Black
	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts and deduplicates the cycle that ends at start.
// path is the current DFS path stack, containing [ ... start ... current ].
// Steps:
//  1. Find index of start in path.
//  2. Extract the sub-slice path[idx:] and append start to close the loop.
//  3. Canonicalize the cycle (minimal rotation, or its reverse when undirected).
//  4. If the canonical signature has not been seen before, append to cycles.
func recordCycle(
	start string,
	path []string,
	directed bool,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := slices.Index(path, start)

	seq := append(slices.Clone(path[idx:]), start) // close cycle

	sig, canon := canonical(seq, directed)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the canonical form of cycle. A cycle has no
// distinguished first vertex, so the lexicographically smallest rotation
// serves as its representative; for undirected graphs the mirror image
// describes the same cycle, so the smaller of the two directions wins.
// Returns:
//   - sig: the comma-joined signature of the canonical closed cycle,
//   - canon: the closed cycle slice [v0, v1, ..., v0] in canonical order.
func canonical(cycle []string, directed bool) (string, []string) {
	// Drop the duplicated final vertex before rotating
	base := cycle[:len(cycle)-1]

	best := smallestRotation(base)
	if !directed {
		rev := slices.Clone(base)
		slices.Reverse(rev)
		if mirror := smallestRotation(rev); slices.Compare(mirror, best) < 0 {
			best = mirror
		}
	}

	// Close the cycle by appending its first element to the end
	closed := append(best, best[0])

	return strings.Join(closed, ","), closed
}

// smallestRotation returns the rotation of ids that sorts lowest,
// as a fresh slice. ids itself is left untouched.
func smallestRotation(ids []string) []string {
	best := 0
	for cand := 1; cand < len(ids); cand++ {
		if rotationLess(ids, cand, best) {
			best = cand
		}
	}

	rot := make([]string, 0, len(ids))
	rot = append(rot, ids[best:]...)
	rot = append(rot, ids[:best]...)

	return rot
}

// rotationLess reports whether the rotation of ids starting at a sorts
// strictly before the one starting at b.
func rotationLess(ids []string, a, b int) bool {
	for k, n := 0, len(ids); k < n; k++ {
		ra, rb := ids[(a+k)%n], ids[(b+k)%n]
		if ra != rb {
			return ra < rb
		}
	}

	return false
}
