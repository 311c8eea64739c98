package css

import "github.com/lukehoban/cssengine/strpool"

// defaultHashSlots is the bucket count libcss's hash uses before any
// resizing; resizing is permitted but not required for conformance
// (spec.md §4.6), so this implementation never resizes.
//
// Grounded on _examples/original_source/src/select/hash.c.
const defaultHashSlots = 1 << 6

// SelectorHash indexes compiled selectors by the interned name of their
// rightmost simple selector's element-name detail, with a distinguished
// universal bucket for selectors with no element-name condition.
type SelectorHash struct {
	buckets   [defaultHashSlots][]*Selector
	universal []*Selector
}

// NewSelectorHash returns an empty hash with the default slot count.
func NewSelectorHash() *SelectorHash {
	return &SelectorHash{}
}

// slotFor hashes an interned handle by pointer identity, matching
// hash.c's use of the interned string's address as the hash input.
func slotFor(h strpool.Handle) int {
	return int(strpool.Addr(h) % defaultHashSlots)
}

// Insert adds sel to the bucket keyed by its element name (or the
// universal bucket), keeping the bucket's chain ordered ascending by
// (specificity, rule index) as entries are inserted.
func (h *SelectorHash) Insert(sel *Selector) {
	bucket := h.bucketFor(sel)
	chain := *bucket
	i := 0
	for i < len(chain) && less(chain[i], sel) {
		i++
	}
	chain = append(chain, nil)
	copy(chain[i+1:], chain[i:])
	chain[i] = sel
	*bucket = chain
}

// Remove deletes sel from its bucket. A no-op if sel is not present.
func (h *SelectorHash) Remove(sel *Selector) {
	bucket := h.bucketFor(sel)
	chain := *bucket
	for i, s := range chain {
		if s == sel {
			*bucket = append(chain[:i], chain[i+1:]...)
			return
		}
	}
}

// Lookup returns the ordered chain of selectors keyed by the interned
// element name, or nil if none are indexed under that name.
func (h *SelectorHash) Lookup(name strpool.Handle) []*Selector {
	var out []*Selector
	for _, sel := range h.buckets[slotFor(name)] {
		if n, ok := sel.ElementName(); ok && strpool.Equal(n, name) {
			out = append(out, sel)
		}
	}
	return out
}

// Universal returns the chain of selectors whose rightmost simple
// selector has no element-name condition.
func (h *SelectorHash) Universal() []*Selector {
	return h.universal
}

func (h *SelectorHash) bucketFor(sel *Selector) *[]*Selector {
	if name, ok := sel.ElementName(); ok {
		return &h.buckets[slotFor(name)]
	}
	return &h.universal
}

func less(a, b *Selector) bool {
	if a.Specificity != b.Specificity {
		return a.Specificity < b.Specificity
	}
	ai, bi := ruleIndex(a), ruleIndex(b)
	return ai < bi
}

func ruleIndex(s *Selector) int {
	if s.Rule == nil {
		return 0
	}
	return s.Rule.Index
}
