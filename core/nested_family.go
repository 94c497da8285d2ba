package core

// NestedFamily maintains a forest of blossoms over the node set, tracking
// which top-level set each original node currently belongs to. It generalises
// a classical disjoint-set-family structure with the split, block/unblock,
// and top operations blossom handling requires beyond plain union-find:
// blossoms must later be un-contracted (split), and the primal-dual modified-
// length recomputation must be able to temporarily "look inside" a blossom
// (block/unblock) without permanently undoing the merge.
//
// Path compression is used for Find; Merge keeps one of the two previous
// roots as the representative and records the other as its child, so that a
// later Split can re-expose the recorded children.
type NestedFamily struct {
	parent   []Node // parent[v] == v for a top-level representative
	rank     []int
	blocked  []bool     // blocked[v]: Find ignores v's membership, treats it as its own set
	children [][]Node   // children[rep]: the sets merged to create rep, for Split
	base     []Node     // base[v]: the blossom base node, set on creation, read by callers
}

// NewNestedFamily returns a NestedFamily over n nodes, each initially its own
// singleton top-level set (the "Bud" operation of disjointFamily.h, applied
// to every node up front).
func NewNestedFamily(n Node) *NestedFamily {
	nf := &NestedFamily{
		parent:  make([]Node, n),
		rank:    make([]int, n),
		blocked: make([]bool, n),
		base:    make([]Node, n),
	}
	for v := Node(0); v < n; v++ {
		nf.parent[v] = v
		nf.base[v] = v
	}
	nf.children = make([][]Node, n)

	return nf
}

// Find returns v's current top-level representative, applying path
// compression. Find does not read the blocked flag: a blocked node is a
// root (Block set its parent to itself), so Find returns it for itself and
// for any node whose parent chain passes through it, until Unblock.
func (nf *NestedFamily) Find(v Node) Node {
	root := v
	for nf.parent[root] != root {
		root = nf.parent[root]
	}
	for nf.parent[v] != root {
		nf.parent[v], v = root, nf.parent[v]
	}

	return root
}

// Top reports whether v is currently its own top-level representative.
func (nf *NestedFamily) Top(v Node) bool { return nf.Find(v) == v }

// Merge unites the sets containing u and v into a single top-level set and
// returns its representative. base becomes the base of the merged blossom
// (the node passed as the "bud"); callers (bns, mv) pass the blossom base
// they have already computed.
//
// Merge allocates no new representative: it reuses whichever of
// Find(u)/Find(v) has the larger rank as the root (classic union-by-rank)
// and records only the other root as a child, so amortised Find stays
// near-inverse-Ackermann.
func (nf *NestedFamily) Merge(u, v Node, base Node) Node {
	ru, rv := nf.Find(u), nf.Find(v)
	if ru == rv {
		return ru
	}
	if nf.rank[ru] < nf.rank[rv] {
		ru, rv = rv, ru
	}
	nf.parent[rv] = ru
	if nf.rank[ru] == nf.rank[rv] {
		nf.rank[ru]++
	}
	nf.children[ru] = append(nf.children[ru], rv)
	nf.base[ru] = base

	return ru
}

// MergeInto unites the set containing v into the existing top-level set rep
// (used when growing a blossom incrementally, one interior node at a time,
// rather than merging two equal blossoms). rep must already be a top-level
// representative.
func (nf *NestedFamily) MergeInto(rep, v Node) {
	rv := nf.Find(v)
	if rv == rep {
		return
	}
	nf.parent[rv] = rep
	nf.children[rep] = append(nf.children[rep], rv)
}

// Split re-exposes the immediate children of the blossom represented by v,
// undoing exactly the merges that built it (and no deeper nesting level):
// each recorded child becomes top-level again. Returns the children exposed.
func (nf *NestedFamily) Split(v Node) []Node {
	rep := nf.Find(v)
	kids := nf.children[rep]
	nf.children[rep] = nil
	for _, k := range kids {
		nf.parent[k] = k
	}
	nf.base[rep] = rep

	return kids
}

// Block hides v from Find by freezing it as its own singleton root,
// without touching nf.children bookkeeping, so Unblock(v) cannot be
// achieved by Split -- the caller must remember the frozen parent itself.
// No solver in this module calls Block; see Unblock.
func (nf *NestedFamily) Block(v Node) (restore Node) {
	restore = nf.parent[v]
	nf.blocked[v] = true
	nf.parent[v] = v

	return restore
}

// Unblock restores v's parent link to restore (the value Block returned),
// and clears the blocked flag.
func (nf *NestedFamily) Unblock(v Node, restore Node) {
	nf.blocked[v] = false
	nf.parent[v] = restore
}

// IsBlocked reports whether v was most recently hidden via Block and not yet
// restored via Unblock.
func (nf *NestedFamily) IsBlocked(v Node) bool { return nf.blocked[v] }

// Base returns the recorded base node of the blossom represented by
// Find(v) -- the node the blossom was grown from, i.e. the "bud prop"
// anchor of a Blossom's definition.
func (nf *NestedFamily) Base(v Node) Node { return nf.base[nf.Find(v)] }
