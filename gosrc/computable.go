package gosrc

import "soyc-go/soytree"

// computableChecker decides whether a node's rendered output can be
// produced by a single Go expression, as opposed to requiring statements.
// Results are memoized by node ID; the cache is only valid while the tree
// is not mutated, so a fresh checker is required per generation pass.
type computableChecker struct {
	codeStyle CodeStyle
	memo      map[int]bool
}

func newComputableChecker(codeStyle CodeStyle) *computableChecker {
	return &computableChecker{codeStyle: codeStyle, memo: make(map[int]bool)}
}

func (c *computableChecker) isComputable(n soytree.Node) bool {
	if v, ok := c.memo[n.ID()]; ok {
		return v
	}
	v := c.compute(n)
	c.memo[n.ID()] = v
	return v
}

func (c *computableChecker) compute(n soytree.Node) bool {
	switch n := n.(type) {
	case *soytree.TemplateNode:
		return c.allChildrenComputable(n)
	case *soytree.RawTextNode:
		return true
	case *soytree.PrintNode:
		return true
	case *soytree.MsgHtmlTagNode:
		return c.allChildrenComputable(n)
	case *soytree.CssNode:
		return true
	case *soytree.CallNode:
		// Only a concat-style call returns its output as a value; a
		// stringbuilder-style call appends into a buffer and has no
		// expression form.
		if c.codeStyle != CodeStyleConcat {
			return false
		}
		for _, p := range n.Params {
			if content, ok := p.(*soytree.CallParamContentNode); ok {
				if !c.isComputable(content) {
					return false
				}
			}
		}
		return true
	case *soytree.CallParamContentNode:
		return c.allChildrenComputable(n)
	}
	return false
}

// allChildrenComputable checks every child, skipping the always-computable
// raw text and print kinds without a memo round trip.
func (c *computableChecker) allChildrenComputable(parent soytree.ParentNode) bool {
	for _, child := range parent.Children() {
		switch child.(type) {
		case *soytree.RawTextNode, *soytree.PrintNode:
			continue
		}
		if !c.isComputable(child) {
			return false
		}
	}
	return true
}

// canInitOutputVar reports whether a node's generated code may perform the
// output accumulator's first assignment. It follows computability except
// for stringbuilder-style calls, which only ever append into an existing
// buffer.
func (c *computableChecker) canInitOutputVar(n soytree.Node) bool {
	if _, ok := n.(*soytree.CallNode); ok && c.codeStyle == CodeStyleStringbuilder {
		return false
	}
	return c.isComputable(n)
}
