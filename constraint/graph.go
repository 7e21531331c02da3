package constraint

// Graph is the dependency graph shared by a set of cells. Nodes live in an
// arena and edges are node indices, so invalidation walks plain slices.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
	free  []int

	// wave stamps nodes visited by the current notification.
	wave int
	busy bool
	// pending holds notifications raised while a wave is running.
	pending []notification
}

type node struct {
	live       bool
	gen        uint32 // bumped on release so stale cells and handles miss
	name       string
	deps       []int // nodes this node reads
	dependents []int // nodes that read this node
	evaluating bool
	mark       int

	// refresh re-derives the owning cell and reports whether its value changed.
	refresh func() bool

	watchers []watcher
	nextID   uint32
}

type watcher struct {
	id uint32
	fn func(forced bool)
}

type notification struct {
	origin int
	forced bool
}

// NewGraph creates an empty dependency graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes) - len(g.free)
}

// add allocates a node, reusing a released slot when one is available. It
// returns the slot and its generation.
func (g *Graph) add(name string, refresh func() bool) (int, uint32) {
	n := node{live: true, name: name, refresh: refresh}
	if k := len(g.free); k > 0 {
		id := g.free[k-1]
		g.free = g.free[:k-1]
		n.gen = g.nodes[id].gen
		g.nodes[id] = n
		return id, n.gen
	}
	g.nodes = append(g.nodes, n)
	return len(g.nodes) - 1, 0
}

// alive reports whether slot id still holds generation gen.
func (g *Graph) alive(id int, gen uint32) bool {
	return id >= 0 && id < len(g.nodes) && g.nodes[id].live && g.nodes[id].gen == gen
}

// remove drops a node and every edge touching it.
func (g *Graph) remove(id int) {
	if !g.nodes[id].live {
		return
	}
	g.unlinkDeps(id)
	for _, d := range g.nodes[id].dependents {
		g.nodes[d].deps = removeIndex(g.nodes[d].deps, id)
	}
	g.nodes[id] = node{gen: g.nodes[id].gen + 1}
	g.free = append(g.free, id)
}

// link records that node to reads node from.
func (g *Graph) link(from, to int) {
	for _, d := range g.nodes[to].deps {
		if d == from {
			return
		}
	}
	g.nodes[to].deps = append(g.nodes[to].deps, from)
	g.nodes[from].dependents = append(g.nodes[from].dependents, to)
}

// unlinkDeps removes every incoming edge of id.
func (g *Graph) unlinkDeps(id int) {
	for _, d := range g.nodes[id].deps {
		g.nodes[d].dependents = removeIndex(g.nodes[d].dependents, id)
	}
	g.nodes[id].deps = g.nodes[id].deps[:0]
}

// pathTo returns the chain of nodes leading from start to target along
// dependents edges, or nil when target is unreachable.
func (g *Graph) pathTo(start, target int) []int {
	if start == target {
		return []int{start}
	}
	parent := make(map[int]int)
	parent[start] = -1
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.nodes[cur].dependents {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == target {
				var path []int
				for p := next; p != -1; p = parent[p] {
					path = append(path, p)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			stack = append(stack, next)
		}
	}
	return nil
}

// notify runs a change wave starting at origin. Waves never nest: a change
// raised by a listener is queued and runs after the current wave.
func (g *Graph) notify(origin int, forced bool) {
	if g.busy {
		g.pending = append(g.pending, notification{origin: origin, forced: forced})
		return
	}
	g.busy = true
	defer func() { g.busy = false }()

	g.runWave(origin, forced)
	for len(g.pending) > 0 {
		next := g.pending[0]
		g.pending = g.pending[1:]
		if g.nodes[next.origin].live {
			g.runWave(next.origin, next.forced)
		}
	}
}

type waveItem struct {
	id     int
	forced bool
}

func (g *Graph) runWave(origin int, forced bool) {
	g.wave++
	g.nodes[origin].mark = g.wave
	g.fire(origin, forced)

	var queue []waveItem
	for _, d := range g.nodes[origin].dependents {
		queue = append(queue, waveItem{id: d, forced: forced})
	}
	visited := 0
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		n := &g.nodes[it.id]
		if !n.live || n.mark == g.wave {
			continue
		}
		n.mark = g.wave
		visited++
		changed := n.refresh()
		if !changed && !it.forced {
			continue
		}
		g.fire(it.id, it.forced)
		for _, d := range g.nodes[it.id].dependents {
			queue = append(queue, waveItem{id: d})
		}
	}
	Logger().Debug("constraint wave",
		"origin", g.nodes[origin].name, "forced", forced, "visited", visited)
}

func (g *Graph) fire(id int, forced bool) {
	// Copy so a listener may remove itself.
	ws := append([]watcher(nil), g.nodes[id].watchers...)
	for _, w := range ws {
		w.fn(forced)
	}
}

// Handle allows removing a registered change listener.
type Handle struct {
	g   *Graph
	id  int
	gen uint32
	wid uint32
}

// Remove unregisters the listener. Removing twice, or after the cell was
// released, is a no-op.
func (h Handle) Remove() {
	if h.g == nil || !h.g.alive(h.id, h.gen) {
		return
	}
	ws := h.g.nodes[h.id].watchers
	for i := range ws {
		if ws[i].id == h.wid {
			copy(ws[i:], ws[i+1:])
			ws[len(ws)-1] = watcher{}
			h.g.nodes[h.id].watchers = ws[:len(ws)-1]
			return
		}
	}
}

func (g *Graph) watch(id int, fn func(forced bool)) Handle {
	n := &g.nodes[id]
	n.nextID++
	n.watchers = append(n.watchers, watcher{id: n.nextID, fn: fn})
	return Handle{g: g, id: id, gen: n.gen, wid: n.nextID}
}

func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			copy(s[i:], s[i+1:])
			return s[:len(s)-1]
		}
	}
	return s
}
