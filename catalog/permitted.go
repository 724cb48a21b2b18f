package catalog

// PermittedSegments is the segment selection a single tiling search
// may draw from. Start segments may open the chain, End segments may
// close it, Inner segments fill the interior; All is their union in
// first-seen order (Start, then Inner, then End). A segment may appear
// in any number of sets.
type PermittedSegments struct {
	Catalog *Catalog
	Start   []*TemplateSegment
	Inner   []*TemplateSegment
	End     []*TemplateSegment
}

// FromInner selects every segment whose terminals are all of one of
// the given types, and permits it in every role. This is the usual
// selection for homogeneous paths (a beach that starts, runs, and
// ends as beach).
func FromInner(c *Catalog, types ...string) *PermittedSegments {
	var segs []*TemplateSegment
	for _, seg := range c.Segments() {
		if allInnerTypesIn(seg, types) {
			segs = append(segs, seg)
		}
	}

	return &PermittedSegments{Catalog: c, Start: segs, Inner: segs, End: segs}
}

// FromTypes selects role sets independently: Start by start-terminal
// type, End by end-terminal type, Inner by both terminals. Use this
// for paths that open or close with transition segments.
func FromTypes(c *Catalog, startTypes, innerTypes, endTypes []string) *PermittedSegments {
	p := &PermittedSegments{Catalog: c}
	for _, seg := range c.Segments() {
		for _, t := range startTypes {
			if seg.HasStartType(t) {
				p.Start = append(p.Start, seg)
				break
			}
		}
		if allInnerTypesIn(seg, innerTypes) {
			p.Inner = append(p.Inner, seg)
		}
		for _, t := range endTypes {
			if seg.HasEndType(t) {
				p.End = append(p.End, seg)
				break
			}
		}
	}

	return p
}

// FromSegments builds a selection from explicit role sets. Intended
// for tests and callers that curate segments by hand.
func FromSegments(c *Catalog, start, inner, end []*TemplateSegment) *PermittedSegments {
	return &PermittedSegments{Catalog: c, Start: start, Inner: inner, End: end}
}

// All returns Start ∪ Inner ∪ End, preserving first-seen order.
func (p *PermittedSegments) All() []*TemplateSegment {
	seen := make(map[*TemplateSegment]bool)
	var out []*TemplateSegment
	for _, set := range [][]*TemplateSegment{p.Start, p.Inner, p.End} {
		for _, seg := range set {
			if !seen[seg] {
				seen[seg] = true
				out = append(out, seg)
			}
		}
	}

	return out
}

// allInnerTypesIn reports whether every terminal type of seg is one of
// the given type names.
func allInnerTypesIn(seg *TemplateSegment, types []string) bool {
	for _, it := range seg.InnerTypes() {
		found := false
		for _, t := range types {
			if it == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
