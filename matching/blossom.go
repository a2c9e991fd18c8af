// SPDX-License-Identifier: MIT

package matching

import "math"

// Vertex/blossom labels. labelCrumb is OR-ed onto labelS while scanBlossom
// walks the two alternating paths looking for their common base.
const (
	labelFree  = 0
	labelS     = 1
	labelT     = 2
	labelCrumb = 4
)

// Delta kinds chosen in a dual adjustment step.
const (
	deltaNone = iota
	deltaStop          // a vertex dual reached zero: no augmenting path this stage
	deltaFreeEdge      // S-vertex to free vertex edge became tight
	deltaSEdge         // S-blossom to S-blossom edge became tight
	deltaExpand        // a T-blossom dual reached zero: expand it
)

// MaxWeight computes a maximum-weight matching of g.
//
// Algorithm outline:
//  1. Every vertex starts with dual u_v = max(0, max weight); every blossom z_b = 0.
//  2. Each stage grows alternating trees from all free vertices (label S)
//     over tight edges (slack u_i + u_j − 2w = 0), labeling T/S alternately.
//  3. An S–S tight edge either closes an odd cycle (shrink it into a
//     blossom) or joins two trees (augment along the path, end the stage).
//  4. With no tight edge left, adjust duals by the largest δ that keeps
//     every slack ≥ 0, which makes at least one new edge tight, drives a
//     T-blossom dual to zero (expand it), or drives a vertex dual to zero
//     (the matching is optimal).
//
// Edge endpoints are encoded as p: edge k has endpoints 2k (its U) and
// 2k+1 (its V); p^1 is the opposite endpoint and p/2 the edge.
//
// Complexity: O(V³) time, O(V + E) memory.
func MaxWeight(g *Graph, opts Options) Matching {
	res := Matching{Mate: make([]int, g.n)}
	for i := range res.Mate {
		res.Mate[i] = -1
	}
	if len(g.edges) == 0 {
		return res
	}

	s := newSolver(g, opts)
	s.run()

	for v := 0; v < s.nv; v++ {
		p := s.mate[v]
		if p < 0 {
			continue
		}
		w := s.endpoint[p]
		res.Mate[v] = w
		if v < w {
			res.Weight += s.edges[p/2].Weight
		}
	}

	return res
}

// solver holds the per-call blossom state. Indices 0..nv-1 are vertices,
// nv..2nv-1 are (possibly unused) blossom slots.
type solver struct {
	nv      int
	edges   []Edge
	maxCard bool

	endpoint  []int   // endpoint[p] = vertex at endpoint p
	neighbend [][]int // neighbend[v] = remote endpoints of edges incident to v

	mate      []int // mate[v] = remote endpoint of v's matched edge, or -1
	label     []int // label of vertex / top-level blossom
	labelEnd  []int // endpoint through which the label was assigned, or -1
	inBlossom []int // top-level blossom containing each vertex

	blossomParent    []int
	blossomChilds    [][]int // sub-blossoms in cyclic order, base first
	blossomBase      []int
	blossomEndps     [][]int // endpoints connecting consecutive childs
	bestEdge         []int   // least-slack edge to a different S-blossom, or -1
	blossomBestEdges [][]int // per S-blossom candidate edges; nil when unknown
	unused           []int

	dualVar   []float64
	allowEdge []bool
	queue     []int
}

func newSolver(g *Graph, opts Options) *solver {
	nv, ne := g.n, len(g.edges)

	maxW := 0.0
	for _, e := range g.edges {
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}

	s := &solver{
		nv:               nv,
		edges:            g.edges,
		maxCard:          opts.MaxCardinality,
		endpoint:         make([]int, 2*ne),
		neighbend:        make([][]int, nv),
		mate:             fill(make([]int, nv), -1),
		label:            make([]int, 2*nv),
		labelEnd:         fill(make([]int, 2*nv), -1),
		inBlossom:        make([]int, nv),
		blossomParent:    fill(make([]int, 2*nv), -1),
		blossomChilds:    make([][]int, 2*nv),
		blossomBase:      fill(make([]int, 2*nv), -1),
		blossomEndps:     make([][]int, 2*nv),
		bestEdge:         fill(make([]int, 2*nv), -1),
		blossomBestEdges: make([][]int, 2*nv),
		unused:           make([]int, 0, nv),
		dualVar:          make([]float64, 2*nv),
		allowEdge:        make([]bool, ne),
	}

	for k, e := range g.edges {
		s.endpoint[2*k] = e.U
		s.endpoint[2*k+1] = e.V
		s.neighbend[e.U] = append(s.neighbend[e.U], 2*k+1)
		s.neighbend[e.V] = append(s.neighbend[e.V], 2*k)
	}
	for v := 0; v < nv; v++ {
		s.inBlossom[v] = v
		s.blossomBase[v] = v
		s.dualVar[v] = maxW
		s.unused = append(s.unused, nv+v)
	}

	return s
}

func fill(xs []int, v int) []int {
	for i := range xs {
		xs[i] = v
	}

	return xs
}

// slack returns u_i + u_j − 2w for edge k. Blossom duals are left out: they
// cancel for edges inside a blossom and are zero-contribution otherwise.
func (s *solver) slack(k int) float64 {
	e := s.edges[k]

	return s.dualVar[e.U] + s.dualVar[e.V] - 2*e.Weight
}

// leaves appends every vertex contained in (sub-)blossom b to out.
func (s *solver) leaves(b int, out []int) []int {
	if b < s.nv {
		return append(out, b)
	}
	for _, t := range s.blossomChilds[b] {
		if t < s.nv {
			out = append(out, t)
		} else {
			out = s.leaves(t, out)
		}
	}

	return out
}

// assignLabel gives w (and its top-level blossom) label t, reached via
// endpoint p. A T label immediately propagates S to the blossom's mate.
func (s *solver) assignLabel(w, t, p int) {
	b := s.inBlossom[w]
	s.label[w], s.label[b] = t, t
	s.labelEnd[w], s.labelEnd[b] = p, p
	s.bestEdge[w], s.bestEdge[b] = -1, -1

	switch t {
	case labelS:
		s.queue = s.leaves(b, s.queue)
	case labelT:
		base := s.blossomBase[b]
		s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
	}
}

// scanBlossom walks back from v and w along their alternating trees.
// It returns the base of the new blossom, or -1 if the trees are distinct
// (an augmenting path exists).
func (s *solver) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inBlossom[v]
		if s.label[b]&labelCrumb != 0 {
			base = s.blossomBase[b]
			break
		}
		path = append(path, b)
		s.label[b] = labelS | labelCrumb
		if s.labelEnd[b] == -1 {
			// root of the tree
			v = -1
		} else {
			v = s.endpoint[s.labelEnd[b]]
			b = s.inBlossom[v]
			v = s.endpoint[s.labelEnd[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = labelS
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k with the given base.
func (s *solver) addBlossom(base, k int) {
	v, w := s.edges[k].U, s.edges[k].V
	bb := s.inBlossom[base]
	bv := s.inBlossom[v]
	bw := s.inBlossom[w]

	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]

	s.blossomBase[b] = base
	s.blossomParent[b] = -1
	s.blossomParent[bb] = b

	var path, endps []int
	for bv != bb {
		s.blossomParent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelEnd[bv])
		v = s.endpoint[s.labelEnd[bv]]
		bv = s.inBlossom[v]
	}
	path = append(path, bb)
	reverse(path)
	reverse(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		s.blossomParent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelEnd[bw]^1)
		w = s.endpoint[s.labelEnd[bw]]
		bw = s.inBlossom[w]
	}
	s.blossomChilds[b] = path
	s.blossomEndps[b] = endps

	s.label[b] = labelS
	s.labelEnd[b] = s.labelEnd[bb]
	s.dualVar[b] = 0

	// Former T-vertices become S inside the blossom and must be scanned.
	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inBlossom[lv]] == labelT {
			s.queue = append(s.queue, lv)
		}
		s.inBlossom[lv] = b
	}

	// Recompute least-slack edges from the new blossom to other S-blossoms.
	bestEdgeTo := fill(make([]int, 2*s.nv), -1)
	for _, sub := range path {
		var lists [][]int
		if s.blossomBestEdges[sub] == nil {
			for _, lv := range s.leaves(sub, nil) {
				ks := make([]int, len(s.neighbend[lv]))
				for i, p := range s.neighbend[lv] {
					ks[i] = p / 2
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{s.blossomBestEdges[sub]}
		}
		for _, ks := range lists {
			for _, kk := range ks {
				j := s.edges[kk].V
				if s.inBlossom[j] == b {
					j = s.edges[kk].U
				}
				bj := s.inBlossom[j]
				if bj != b && s.label[bj] == labelS &&
					(bestEdgeTo[bj] == -1 || s.slack(kk) < s.slack(bestEdgeTo[bj])) {
					bestEdgeTo[bj] = kk
				}
			}
		}
		s.blossomBestEdges[sub] = nil
		s.bestEdge[sub] = -1
	}

	best := make([]int, 0, len(bestEdgeTo))
	for _, kk := range bestEdgeTo {
		if kk != -1 {
			best = append(best, kk)
		}
	}
	s.blossomBestEdges[b] = best
	s.bestEdge[b] = -1
	for _, kk := range best {
		if s.bestEdge[b] == -1 || s.slack(kk) < s.slack(s.bestEdge[b]) {
			s.bestEdge[b] = kk
		}
	}
}

// expandBlossom dissolves top-level blossom b. Outside of the end-of-stage
// cleanup, a T-blossom's sub-blossoms are relabeled so the alternating tree
// stays consistent.
func (s *solver) expandBlossom(b int, endStage bool) {
	for _, sub := range s.blossomChilds[b] {
		s.blossomParent[sub] = -1
		switch {
		case sub < s.nv:
			s.inBlossom[sub] = sub
		case endStage && s.dualVar[sub] == 0:
			s.expandBlossom(sub, endStage)
		default:
			for _, lv := range s.leaves(sub, nil) {
				s.inBlossom[lv] = sub
			}
		}
	}

	if !endStage && s.label[b] == labelT {
		childs := s.blossomChilds[b]
		endps := s.blossomEndps[b]

		// Walk from the entry child to the base along the even-length side.
		entry := s.inBlossom[s.endpoint[s.labelEnd[b]^1]]
		j := indexOf(childs, entry)
		jstep, trick := -1, 1
		if j&1 != 0 {
			j -= len(childs)
			jstep, trick = 1, 0
		}
		p := s.labelEnd[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = labelFree
			s.label[s.endpoint[at(endps, j-trick)^trick^1]] = labelFree
			s.assignLabel(s.endpoint[p^1], labelT, p)
			s.allowEdge[at(endps, j-trick)/2] = true
			j += jstep
			p = at(endps, j-trick) ^ trick
			s.allowEdge[p/2] = true
			j += jstep
		}

		// The base child keeps the T label without re-propagating S.
		bv := at(childs, j)
		s.label[s.endpoint[p^1]], s.label[bv] = labelT, labelT
		s.labelEnd[s.endpoint[p^1]], s.labelEnd[bv] = p, p
		s.bestEdge[bv] = -1

		// Odd-side children that were reached from outside get relabeled T.
		j += jstep
		for at(childs, j) != entry {
			bv = at(childs, j)
			if s.label[bv] == labelS {
				j += jstep
				continue
			}
			reached := -1
			for _, lv := range s.leaves(bv, nil) {
				if s.label[lv] != labelFree {
					reached = lv
					break
				}
			}
			if reached >= 0 {
				s.label[reached] = labelFree
				s.label[s.endpoint[s.mate[s.blossomBase[bv]]]] = labelFree
				s.assignLabel(reached, labelT, s.labelEnd[reached])
			}
			j += jstep
		}
	}

	s.label[b], s.labelEnd[b] = -1, -1
	s.blossomChilds[b], s.blossomEndps[b] = nil, nil
	s.blossomBase[b] = -1
	s.blossomBestEdges[b] = nil
	s.bestEdge[b] = -1
	s.unused = append(s.unused, b)
}

// augmentBlossom flips matched/unmatched edges inside b along the even path
// from vertex v to the base, and rotates b so v's sub-blossom is the new base.
func (s *solver) augmentBlossom(b, v int) {
	t := v
	for s.blossomParent[t] != b {
		t = s.blossomParent[t]
	}
	if t >= s.nv {
		s.augmentBlossom(t, v)
	}

	childs := s.blossomChilds[b]
	endps := s.blossomEndps[b]
	i := indexOf(childs, t)
	j := i
	jstep, trick := -1, 1
	if i&1 != 0 {
		j -= len(childs)
		jstep, trick = 1, 0
	}
	for j != 0 {
		j += jstep
		t = at(childs, j)
		p := at(endps, j-trick) ^ trick
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = at(childs, j)
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.blossomChilds[b] = rotate(childs, i)
	s.blossomEndps[b] = rotate(endps, i)
	s.blossomBase[b] = s.blossomBase[s.blossomChilds[b][0]]
}

// augmentMatching flips the augmenting path through edge k back to both roots.
func (s *solver) augmentMatching(k int) {
	e := s.edges[k]
	for _, start := range [2][2]int{{e.U, 2*k + 1}, {e.V, 2 * k}} {
		sv, p := start[0], start[1]
		for {
			bs := s.inBlossom[sv]
			if bs >= s.nv {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelEnd[bs] == -1 {
				// reached a tree root
				break
			}
			t := s.endpoint[s.labelEnd[bs]]
			bt := s.inBlossom[t]
			sv = s.endpoint[s.labelEnd[bt]]
			j := s.endpoint[s.labelEnd[bt]^1]
			if bt >= s.nv {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelEnd[bt]
			p = s.labelEnd[bt] ^ 1
		}
	}
}

// run executes at most nv stages; each successful stage grows the matching by one edge.
func (s *solver) run() {
	nv := s.nv
	for stage := 0; stage < nv; stage++ {
		for i := range s.label {
			s.label[i] = labelFree
			s.bestEdge[i] = -1
		}
		for b := nv; b < 2*nv; b++ {
			s.blossomBestEdges[b] = nil
		}
		for k := range s.allowEdge {
			s.allowEdge[k] = false
		}
		s.queue = s.queue[:0]

		for v := 0; v < nv; v++ {
			if s.mate[v] == -1 && s.label[s.inBlossom[v]] == labelFree {
				s.assignLabel(v, labelS, -1)
			}
		}

		augmented := false
	grow:
		for {
			for len(s.queue) > 0 && !augmented {
				v := s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]
				augmented = s.scanVertex(v)
			}
			if augmented {
				break
			}

			kind, delta, edge, blossom := s.chooseDelta()
			s.applyDelta(delta)

			switch kind {
			case deltaStop:
				break grow
			case deltaFreeEdge:
				s.allowEdge[edge] = true
				i := s.edges[edge].U
				if s.label[s.inBlossom[i]] == labelFree {
					i = s.edges[edge].V
				}
				s.queue = append(s.queue, i)
			case deltaSEdge:
				s.allowEdge[edge] = true
				s.queue = append(s.queue, s.edges[edge].U)
			case deltaExpand:
				s.expandBlossom(blossom, false)
			}
		}
		if !augmented {
			break
		}

		// Expand S-blossoms whose dual dropped to zero; they are free to dissolve.
		for b := nv; b < 2*nv; b++ {
			if s.blossomParent[b] == -1 && s.blossomBase[b] >= 0 &&
				s.label[b] == labelS && s.dualVar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

// scanVertex explores every edge of S-vertex v. It reports whether an
// augmentation took place.
func (s *solver) scanVertex(v int) bool {
	for _, p := range s.neighbend[v] {
		k := p / 2
		w := s.endpoint[p]
		if s.inBlossom[v] == s.inBlossom[w] {
			continue
		}

		var kslack float64
		if !s.allowEdge[k] {
			kslack = s.slack(k)
			if kslack <= 0 {
				s.allowEdge[k] = true
			}
		}

		switch {
		case s.allowEdge[k]:
			switch {
			case s.label[s.inBlossom[w]] == labelFree:
				s.assignLabel(w, labelT, p^1)
			case s.label[s.inBlossom[w]] == labelS:
				if base := s.scanBlossom(v, w); base >= 0 {
					s.addBlossom(base, k)
				} else {
					s.augmentMatching(k)

					return true
				}
			case s.label[w] == labelFree:
				// w is inside a T-blossom but not yet reached itself.
				s.label[w] = labelT
				s.labelEnd[w] = p ^ 1
			}
		case s.label[s.inBlossom[w]] == labelS:
			b := s.inBlossom[v]
			if s.bestEdge[b] == -1 || kslack < s.slack(s.bestEdge[b]) {
				s.bestEdge[b] = k
			}
		case s.label[w] == labelFree:
			if s.bestEdge[w] == -1 || kslack < s.slack(s.bestEdge[w]) {
				s.bestEdge[w] = k
			}
		}
	}

	return false
}

// chooseDelta picks the smallest dual adjustment that keeps all slacks ≥ 0.
func (s *solver) chooseDelta() (kind int, delta float64, edge, blossom int) {
	nv := s.nv
	kind, edge, blossom = deltaNone, -1, -1

	if !s.maxCard {
		kind = deltaStop
		delta = minFloat(s.dualVar[:nv])
	}
	for v := 0; v < nv; v++ {
		if s.label[s.inBlossom[v]] == labelFree && s.bestEdge[v] != -1 {
			if d := s.slack(s.bestEdge[v]); kind == deltaNone || d < delta {
				kind, delta, edge = deltaFreeEdge, d, s.bestEdge[v]
			}
		}
	}
	for b := 0; b < 2*nv; b++ {
		if s.blossomParent[b] == -1 && s.label[b] == labelS && s.bestEdge[b] != -1 {
			if d := s.slack(s.bestEdge[b]) / 2; kind == deltaNone || d < delta {
				kind, delta, edge = deltaSEdge, d, s.bestEdge[b]
			}
		}
	}
	for b := nv; b < 2*nv; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == -1 && s.label[b] == labelT &&
			(kind == deltaNone || s.dualVar[b] < delta) {
			kind, delta, blossom = deltaExpand, s.dualVar[b], b
		}
	}
	if kind == deltaNone {
		// Only reachable in max-cardinality mode: no further augmenting path.
		kind = deltaStop
		delta = math.Max(0, minFloat(s.dualVar[:nv]))
	}

	return kind, delta, edge, blossom
}

// applyDelta moves S duals down and T duals up (blossoms the other way).
func (s *solver) applyDelta(delta float64) {
	nv := s.nv
	for v := 0; v < nv; v++ {
		switch s.label[s.inBlossom[v]] {
		case labelS:
			s.dualVar[v] -= delta
		case labelT:
			s.dualVar[v] += delta
		}
	}
	for b := nv; b < 2*nv; b++ {
		if s.blossomBase[b] >= 0 && s.blossomParent[b] == -1 {
			switch s.label[b] {
			case labelS:
				s.dualVar[b] += delta
			case labelT:
				s.dualVar[b] -= delta
			}
		}
	}
}

func minFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}

// at indexes xs cyclically so negative offsets count from the end.
func at(xs []int, i int) int {
	n := len(xs)

	return xs[((i%n)+n)%n]
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// rotate returns a fresh slice xs[i:] ++ xs[:i].
func rotate(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)

	return append(out, xs[:i]...)
}
