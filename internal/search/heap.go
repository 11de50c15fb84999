package search

// openEntry is one entry in the A* open set: a search node handle and the
// f_score it was pushed with. seq breaks ties in insertion order, since
// the source does not prescribe any other tie-break.
type openEntry struct {
	node   int
	fScore float64
	seq    int
}

// openSet is a container/heap.Interface min-heap over openEntry ordered
// by ascending f_score, matching the source's LessThan comparator.
type openSet []openEntry

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].fScore != s[j].fScore {
		return s[i].fScore < s[j].fScore
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) {
	*s = append(*s, x.(openEntry))
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	entry := old[n-1]
	*s = old[:n-1]
	return entry
}
