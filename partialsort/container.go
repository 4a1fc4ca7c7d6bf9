package partialsort

import (
	"math"
	"sort"
)

// Container is a partial-sort priority structure: it keeps its contents
// only loosely ordered internally, paying for full ordering only on the
// items a Pull actually returns. It is parameterized by a pull block size M
// and an upper bound B: every stored value is < B. A Container is local to
// one BMSSP recursion frame and is discarded when that frame returns.
//
// Internally it keeps two sequences of blocks: D0 (front-loaded by
// BatchPrepend) and D1 (grown by Insert, kept in ascending-upper order so
// insertion can binary-search for a target block). The index loc maps each
// live key directly to the block that currently holds it, which gives O(1)
// lookup and O(block size) deletion without having to track and rewrite
// block/item indices every time a block list is reordered (Split,
// BatchPrepend's prepend, Pull's leftover reinsertion all move blocks
// around; a bare index-triple would need rewriting on every such move).
type Container struct {
	m int
	b float64

	d0 []*block
	d1 []*block

	loc    []*block // key -> owning block, nil if key absent
	active int
}

// New allocates a Container addressable over keys [0, n), with pull block
// size m (clamped to at least 1) and upper bound b.
func New(n, m int, b float64) *Container {
	if m < 1 {
		m = 1
	}

	return &Container{
		m:   m,
		b:   b,
		d1:  []*block{{upper: b}},
		loc: make([]*block, n),
	}
}

// IsEmpty reports whether the container holds no live keys.
func (c *Container) IsEmpty() bool { return c.active == 0 }

// GetValue returns the stored value for key, or +Inf if key is absent.
func (c *Container) GetValue(key int) float64 {
	blk := c.loc[key]
	if blk == nil {
		return math.Inf(1)
	}

	return blk.valueOf(key)
}

// Insert adds key with value: if a prior entry for key exists with a value
// <= the new one, the new value is discarded. Otherwise any prior entry is
// removed and the new (key, value) is placed into the first D1 block whose
// upper bound is >= value, splitting that block if it now exceeds m items.
func (c *Container) Insert(key int, value float64) {
	if blk := c.loc[key]; blk != nil {
		if blk.valueOf(key) <= value {
			return
		}
		c.evict(blk, key)
	}

	bi := sort.Search(len(c.d1), func(i int) bool { return c.d1[i].upper >= value })
	if bi == len(c.d1) {
		// Every existing block's upper is below value. The last block's
		// upper starts at c.b, but splitD1 and Pull's leftover block set
		// upper to a block's own maximum, so this also fires for values
		// below c.b once such a block is last. Open a fresh top block.
		c.d1 = append(c.d1, &block{upper: value})
		bi = len(c.d1) - 1
	}

	blk := c.d1[bi]
	blk.items = append(blk.items, entry{key: key, value: value})
	c.loc[key] = blk
	c.active++

	if len(blk.items) > c.m {
		c.splitD1(bi)
	}
}

// splitD1 splits the D1 block at index bi into two blocks at the median by
// value, each carrying its half's exact maximum as its new upper bound.
func (c *Container) splitD1(bi int) {
	blk := c.d1[bi]
	sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].value < blk.items[j].value })

	mid := len(blk.items) / 2
	lower := &block{items: append([]entry(nil), blk.items[:mid]...)}
	upper := &block{items: append([]entry(nil), blk.items[mid:]...)}
	lower.upper = maxValue(lower.items)
	upper.upper = maxValue(upper.items)

	for _, e := range lower.items {
		c.loc[e.key] = lower
	}
	for _, e := range upper.items {
		c.loc[e.key] = upper
	}

	rest := append([]*block(nil), c.d1[bi+1:]...)
	c.d1 = append(c.d1[:bi], lower, upper)
	c.d1 = append(c.d1, rest...)
}

// BatchPrepend deduplicates pairs (keeping the minimum value per key),
// drops entries weakly dominated by a value already present in the
// container, removes any older entry for a surviving key, chunks the
// survivors into blocks of ceil(m/2), and prepends those blocks to D0.
func (c *Container) BatchPrepend(pairs []Pair) {
	if len(pairs) == 0 {
		return
	}

	best := make(map[int]float64, len(pairs))
	for _, p := range pairs {
		if v, ok := best[p.Key]; !ok || p.Value < v {
			best[p.Key] = p.Value
		}
	}

	keys := make([]int, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Ints(keys) // deterministic traversal of the dedup map

	survivors := make([]entry, 0, len(keys))
	for _, k := range keys {
		v := best[k]
		if blk := c.loc[k]; blk != nil {
			if blk.valueOf(k) <= v {
				continue // weakly dominated by what's already present
			}
			c.evict(blk, k)
		}
		survivors = append(survivors, entry{key: k, value: v})
	}
	if len(survivors) == 0 {
		return
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].value != survivors[j].value {
			return survivors[i].value < survivors[j].value
		}

		return survivors[i].key < survivors[j].key
	})

	chunk := (c.m + 1) / 2 // ceil(m/2)
	if chunk < 1 {
		chunk = 1
	}

	newBlocks := make([]*block, 0, (len(survivors)+chunk-1)/chunk)
	for i := 0; i < len(survivors); i += chunk {
		end := i + chunk
		if end > len(survivors) {
			end = len(survivors)
		}
		items := append([]entry(nil), survivors[i:end]...)
		blk := &block{items: items}
		for _, e := range items {
			c.loc[e.key] = blk
		}
		newBlocks = append(newBlocks, blk)
	}

	c.active += len(survivors)
	c.d0 = append(newBlocks, c.d0...)
}

// Pull gathers items greedily from the front of D0 then D1, a whole block
// at a time, until it has collected strictly more than m items or both
// sequences are exhausted.
//
//   - If at most m items were gathered, every key in the container was
//     consumed: Pull returns (b, allGatheredKeys) and the container is left
//     empty.
//   - Otherwise the gathered items are sorted by value; the m smallest
//     become S, the (m+1)-th smallest value becomes the returned boundary
//     x, and whatever was gathered beyond S is reinserted as a single fresh
//     block at the front of D1 (it was pulled from the front, so its values
//     are still <= everything remaining further back in D1).
func (c *Container) Pull() (float64, []int) {
	var collected []entry

	i := 0
	for i < len(c.d0) && len(collected) <= c.m {
		collected = append(collected, c.d0[i].items...)
		i++
	}
	c.d0 = c.d0[i:]

	j := 0
	if len(collected) <= c.m {
		for j < len(c.d1) && len(collected) <= c.m {
			collected = append(collected, c.d1[j].items...)
			j++
		}
		c.d1 = c.d1[j:]
	}

	for _, e := range collected {
		c.loc[e.key] = nil
	}
	c.active -= len(collected)

	if len(collected) <= c.m {
		keys := make([]int, len(collected))
		for idx, e := range collected {
			keys[idx] = e.key
		}
		sort.Ints(keys)

		return c.b, keys
	}

	sort.SliceStable(collected, func(a, z int) bool {
		if collected[a].value != collected[z].value {
			return collected[a].value < collected[z].value
		}

		return collected[a].key < collected[z].key
	})

	s := collected[:c.m]
	x := collected[c.m].value
	leftover := collected[c.m:]

	keys := make([]int, len(s))
	for idx, e := range s {
		keys[idx] = e.key
	}

	if len(leftover) > 0 {
		items := append([]entry(nil), leftover...)
		blk := &block{items: items, upper: maxValue(items)}
		for _, e := range items {
			c.loc[e.key] = blk
		}
		c.active += len(items)
		c.d1 = append([]*block{blk}, c.d1...)
	}

	return x, keys
}

// evict removes key from blk and updates the container's bookkeeping.
func (c *Container) evict(blk *block, key int) {
	blk.remove(key)
	c.loc[key] = nil
	c.active--
}
