package world

import (
	"math"

	"github.com/milk9111/ageofpanda/common"
)

type neighbor struct {
	id  ObstacleID
	gap float64
}

func (n *neighbor) offer(o *Obstacle, gap float64) {
	g := math.Abs(gap)
	if n.id == 0 || g < n.gap || (g == n.gap && o.ID < n.id) {
		n.id = o.ID
		n.gap = g
	}
}

// BuildGraph recomputes left/right/over/under links and boundary flags for
// every active obstacle with a full pairwise scan. Two boxes are neighbors
// when they overlap on one axis and the gap between their facing edges on
// the other axis is within tol (slight interpenetration included).
func BuildGraph(obstacles []*Obstacle, tol float64) {
	for _, o := range obstacles {
		if o == nil || !o.Active {
			continue
		}
		var left, right, over, under neighbor
		for _, other := range obstacles {
			if other == nil || other == o || !other.Active {
				continue
			}
			if common.SpanOverlap(o.XLeft, o.XRight, other.XLeft, other.XRight) {
				if other.YTop < o.YTop {
					if gap := common.SpanGap(other.YBottom, o.YTop); math.Abs(gap) <= tol {
						over.offer(other, gap)
					}
				}
				if other.YBottom > o.YBottom {
					if gap := common.SpanGap(o.YBottom, other.YTop); math.Abs(gap) <= tol {
						under.offer(other, gap)
					}
				}
			}
			if common.SpanOverlap(o.YTop, o.YBottom, other.YTop, other.YBottom) {
				if other.XLeft < o.XLeft {
					if gap := common.SpanGap(other.XRight, o.XLeft); math.Abs(gap) <= tol {
						left.offer(other, gap)
					}
				}
				if other.XRight > o.XRight {
					if gap := common.SpanGap(o.XRight, other.XLeft); math.Abs(gap) <= tol {
						right.offer(other, gap)
					}
				}
			}
		}

		o.Left, o.Right, o.Over, o.Under = left.id, right.id, over.id, under.id
		o.IsLeftmost = o.Left == 0
		o.IsRightmost = o.Right == 0
		o.IsTop = o.Over == 0
		o.IsBottom = o.Under == 0
	}
}
