package engagement

// A GroupID identifies a set of values belonging together. Single level
// groupings leave Inner empty.
type GroupID struct {
	Outer, Inner string
}

// Key returns a GroupID for a single level grouping.
func Key(outer string) GroupID { return GroupID{Outer: outer} }

// Grouping partitions the indices 0..n-1 of some data.
type Grouping struct {
	// Keys lists the groups in order of their first appearance.
	Keys []GroupID

	// Groups contains the indices for each group in data order.
	// No group is empty.
	Groups map[GroupID][]int
}

// GroupBy groups the n data points by the GroupID returned by key.
func GroupBy(n int, key func(i int) GroupID) *Grouping {
	g := &Grouping{
		Groups: make(map[GroupID][]int),
	}
	for i := 0; i < n; i++ {
		id := key(i)
		if _, seen := g.Groups[id]; !seen {
			g.Keys = append(g.Keys, id)
		}
		g.Groups[id] = append(g.Groups[id], i)
	}
	return g
}

// Len returns the number of groups.
func (g *Grouping) Len() int { return len(g.Keys) }

// Members returns the indices belonging to id.
func (g *Grouping) Members(id GroupID) []int { return g.Groups[id] }

// Outer returns the distinct outer keys in order of first appearance.
func (g *Grouping) Outer() []string {
	var outer []string
	seen := make(map[string]bool)
	for _, id := range g.Keys {
		if !seen[id.Outer] {
			seen[id.Outer] = true
			outer = append(outer, id.Outer)
		}
	}
	return outer
}

// Distinct returns the distinct values of key(0), ..., key(n-1) in order
// of first appearance.
func Distinct(n int, key func(i int) string) []string {
	g := GroupBy(n, func(i int) GroupID { return Key(key(i)) })
	return g.Outer()
}
