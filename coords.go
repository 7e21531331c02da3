package bramble

// toLocal maps a window point into g's child space by walking the parent
// chain down from the top-level group, applying each ParentToChild. The
// top-level group itself is taken to have identity transforms.
func toLocal(g Group, p Point) Point {
	parent := g.Group()
	if parent == nil {
		return p
	}
	return g.ParentToChild(toLocal(parent, p))
}

// insideGroup reports whether local, a point in g's child space, falls
// within g's bounds. The bounds test runs in the parent's space.
func insideGroup(g Group, local Point) bool {
	return g.Contains(g.ChildToParent(local))
}

// WindowToLocal maps a window point into g's child space.
func WindowToLocal(g Group, p Point) Point {
	return toLocal(g, p)
}

// LocalToWindow maps a point in g's child space back to window coordinates.
// Truncation in scaled groups makes it an approximate inverse of
// WindowToLocal.
func LocalToWindow(g Group, p Point) Point {
	for cur := g; cur != nil && cur.Group() != nil; cur = cur.Group() {
		p = cur.ChildToParent(p)
	}
	return p
}

// childAt returns the front-most child of g containing p, a point in g's
// child space, or nil.
func childAt(g Group, p Point) GraphicalObject {
	children := g.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].Contains(p) {
			return children[i]
		}
	}
	return nil
}
