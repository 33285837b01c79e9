package collectionview

// testHost is a standalone Host for exercising layouts without a View.
type testHost struct {
	size   Size
	counts []int
}

func (h testHost) ViewportSize() Size { return h.size }

func (h testHost) NumberOfSections() int { return len(h.counts) }

func (h testHost) NumberOfItems(section int) int { return h.counts[section] }

// allPaths enumerates every valid index path of a host in linear order.
func allPaths(h Host) []IndexPath {
	var paths []IndexPath
	for s := 0; s < h.NumberOfSections(); s++ {
		for i := 0; i < h.NumberOfItems(s); i++ {
			paths = append(paths, IndexPath{Section: s, Item: i})
		}
	}
	return paths
}

// bruteForcePathsIn filters every item of a prepared layout by frame
// intersection; the reference answer optimized rect queries must match.
func bruteForcePathsIn(l Layout, h Host, r Rect) []IndexPath {
	var paths []IndexPath
	for _, p := range allPaths(h) {
		if l.ItemAttributes(p).Frame.Intersects(r) {
			paths = append(paths, p)
		}
	}
	return paths
}

// plainSource supports neither selectability checks nor reordering.
type plainSource struct {
	counts []int
}

func (s plainSource) NumberOfSections() int { return len(s.counts) }

func (s plainSource) NumberOfItems(section int) int { return s.counts[section] }

// flagSource keeps per-item selectability in slices, so any out-of-range
// path handed to IsSelectable panics.
type flagSource struct {
	selectable [][]bool
}

func (s flagSource) NumberOfSections() int { return len(s.selectable) }

func (s flagSource) NumberOfItems(section int) int { return len(s.selectable[section]) }

func (s flagSource) IsSelectable(path IndexPath) bool {
	return s.selectable[path.Section][path.Item]
}

// testSource is a mutable data source for View tests.
type testSource struct {
	counts       []int
	unselectable map[IndexPath]bool
	moves        [][2]IndexPath
}

func (s *testSource) NumberOfSections() int { return len(s.counts) }

func (s *testSource) NumberOfItems(section int) int { return s.counts[section] }

func (s *testSource) IsSelectable(path IndexPath) bool { return !s.unselectable[path] }

func (s *testSource) MoveItem(from, to IndexPath) {
	s.moves = append(s.moves, [2]IndexPath{from, to})
}
