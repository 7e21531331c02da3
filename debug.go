package bramble

// debugEnabled reports whether the window at the root of g's tree is in
// debug mode. Detached subtrees are never checked.
func debugEnabled(g Group) bool {
	for p := g; p != nil; p = p.Group() {
		if w, ok := p.(*Window); ok {
			return w.debug
		}
	}
	return false
}

// debugMaxTreeDepth is the nesting depth above which debug mode warns.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if g sits deeper than debugMaxTreeDepth.
func debugCheckTreeDepth(g Group) {
	depth := 0
	for p := g; p != nil; p = p.Group() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which debug mode warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(g Group) {
	if n := len(g.Children()); n > debugMaxChildCount {
		Logger().Warn("group has too many children",
			"children", n, "threshold", debugMaxChildCount)
	}
}
