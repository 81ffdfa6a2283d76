package model

import "github.com/katalvlaran/rwa/topology"

// layout maps index tuples to dense columns and back.
//
// Columns: [0, offX) are L, [offX, offR) are X, [offR, total) are R.
//
//	L(d)      = d
//	X(d,w)    = offX + d·W + w
//	R(d,w,f)  = offR + (d·W + w)·F + f
//
// Complexity: every lookup is O(1).
type layout struct {
	n, w        int
	selfDemands bool

	demands  []topology.Pair // ordered (i,j), row-major
	fibers   []topology.Pair // ordered (m,n), row-major
	demandAt []int           // i·N+j → demand index, or -1
	fiberAt  []int           // m·N+n → fiber index, or -1

	offX, offR, total int
}

// newLayout enumerates demands and fibers. With self == false the
// diagonals i == j and m == n are left out of both lists.
func newLayout(n, w int, self bool) layout {
	l := layout{
		n:           n,
		w:           w,
		selfDemands: self,
		demandAt:    make([]int, n*n),
		fiberAt:     make([]int, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			l.demandAt[i*n+j] = -1
			l.fiberAt[i*n+j] = -1
			if i == j && !self {
				continue
			}
			l.demandAt[i*n+j] = len(l.demands)
			l.demands = append(l.demands, topology.Pair{From: i, To: j})
			l.fiberAt[i*n+j] = len(l.fibers)
			l.fibers = append(l.fibers, topology.Pair{From: i, To: j})
		}
	}

	d, f := len(l.demands), len(l.fibers)
	l.offX = d
	l.offR = l.offX + d*w
	l.total = l.offR + d*w*f

	return l
}

func (l *layout) inRange(i, j int) bool { return i >= 0 && i < l.n && j >= 0 && j < l.n }

func (l *layout) demand(i, j int) int {
	if !l.inRange(i, j) {
		return -1
	}

	return l.demandAt[i*l.n+j]
}

func (l *layout) fiber(m, n int) int {
	if !l.inRange(m, n) {
		return -1
	}

	return l.fiberAt[m*l.n+n]
}

func (l *layout) lCol(d int) VarID       { return VarID(d) }
func (l *layout) xCol(d, w int) VarID    { return VarID(l.offX + d*l.w + w) }
func (l *layout) rCol(d, w, f int) VarID { return VarID(l.offR + (d*l.w+w)*len(l.fibers) + f) }

// decode returns the family and index tuple of column id. id must be in range.
func (l *layout) decode(id VarID) (Family, []int) {
	k := int(id)
	switch {
	case k < l.offX:
		p := l.demands[k]
		return LightpathCount, []int{p.From, p.To}
	case k < l.offR:
		k -= l.offX
		p := l.demands[k/l.w]
		return WavelengthAssignment, []int{p.From, p.To, k % l.w}
	default:
		k -= l.offR
		f := len(l.fibers)
		dw, fi := k/f, k%f
		p, q := l.demands[dw/l.w], l.fibers[fi]
		return RoutedSegment, []int{p.From, p.To, dw % l.w, q.From, q.To}
	}
}
