package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	Bounds     core.Bounds3
	Left       *BVHNode
	Right      *BVHNode
	Primitives []Primitive // Primitives for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-primitive intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of primitives
func NewBVH(primitives []Primitive) *BVH {
	if len(primitives) == 0 {
		return &BVH{}
	}

	// Copy so partitioning never reorders the caller's slice
	primitivesCopy := make([]Primitive, len(primitives))
	copy(primitivesCopy, primitives)

	return &BVH{Root: buildBVH(primitivesCopy, 0)}
}

// Leaf threshold: if we have this many or fewer primitives, store them in a leaf node
const leafThreshold = 8

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(primitives []Primitive, depth int) *BVHNode {
	bounds := core.EmptyBounds3()
	for _, p := range primitives {
		bounds = bounds.Union(p.Bounds())
	}

	if len(primitives) <= leafThreshold {
		return &BVHNode{Bounds: bounds, Primitives: primitives}
	}

	axis, splitPos, ok := findSplit(primitives)
	if !ok {
		return &BVHNode{Bounds: bounds, Primitives: primitives}
	}

	left, right := partition(primitives, axis, splitPos)

	// Ensure we don't create empty partitions
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{Bounds: bounds, Primitives: primitives}
	}

	return &BVHNode{
		Bounds: bounds,
		Left:   buildBVH(left, depth+1),
		Right:  buildBVH(right, depth+1),
	}
}

// findSplit picks the longest axis of the primitive centers and splits it in the middle
func findSplit(primitives []Primitive) (int, float64, bool) {
	centers := core.EmptyBounds3()
	for _, p := range primitives {
		centers = centers.UnionPoint(p.Bounds().Center())
	}

	axis := centers.LongestAxis()
	minVal, maxVal := centers.Min.Component(axis), centers.Max.Component(axis)
	if maxVal <= minVal {
		return -1, 0, false
	}
	return axis, (minVal + maxVal) * 0.5, true
}

// partition splits primitives by which side of splitPos their center falls on
func partition(primitives []Primitive, axis int, splitPos float64) ([]Primitive, []Primitive) {
	var left, right []Primitive
	for _, p := range primitives {
		if p.Bounds().Center().Component(axis) < splitPos {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}
	return left, right
}

// Valid reports whether the BVH has anything in it; an invalid BVH never produces hits
func (bvh *BVH) Valid() bool {
	return bvh != nil && bvh.Root != nil
}

// Intersect finds the closest primitive hit along the ray
func (bvh *BVH) Intersect(ray core.Ray, tMax float64) (*ShapeIntersection, bool) {
	if !bvh.Valid() {
		return nil, false
	}
	return bvh.intersectNode(bvh.Root, ray, tMax)
}

func (bvh *BVH) intersectNode(node *BVHNode, ray core.Ray, tMax float64) (*ShapeIntersection, bool) {
	if !node.Bounds.Hit(ray, 0, tMax) {
		return nil, false
	}

	var closest *ShapeIntersection
	closestSoFar := tMax

	if node.Primitives != nil {
		for _, p := range node.Primitives {
			if si, ok := p.Intersect(ray, closestSoFar); ok {
				closest = si
				closestSoFar = si.THit
			}
		}
		return closest, closest != nil
	}

	for _, child := range []*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if si, ok := bvh.intersectNode(child, ray, closestSoFar); ok {
			closest = si
			closestSoFar = si.THit
		}
	}
	return closest, closest != nil
}

// IntersectP reports whether any primitive is hit before tMax
func (bvh *BVH) IntersectP(ray core.Ray, tMax float64) bool {
	if !bvh.Valid() {
		return false
	}
	return bvh.intersectNodeP(bvh.Root, ray, tMax)
}

func (bvh *BVH) intersectNodeP(node *BVHNode, ray core.Ray, tMax float64) bool {
	if node == nil || !node.Bounds.Hit(ray, 0, tMax) {
		return false
	}
	if node.Primitives != nil {
		for _, p := range node.Primitives {
			if p.IntersectP(ray, tMax) {
				return true
			}
		}
		return false
	}
	return bvh.intersectNodeP(node.Left, ray, tMax) || bvh.intersectNodeP(node.Right, ray, tMax)
}

// Bounds returns the overall bounding box of the BVH
func (bvh *BVH) Bounds() core.Bounds3 {
	if !bvh.Valid() {
		return core.Bounds3{}
	}
	return bvh.Root.Bounds
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if !bvh.Valid() {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes      int
	LeafNodes       int
	MaxDepth        int
	AvgDepth        float64
	TotalPrimitives int
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Primitives != nil {
		stats.LeafNodes++
		stats.TotalPrimitives += len(node.Primitives)
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}
	if node.Left != nil {
		bvh.collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		bvh.collectStats(node.Right, depth+1, stats)
	}
}
