// Package spatialhash implements a uniform-grid spatial index over
// trajectory start/end points, used to coarsely filter out
// dataset/query trajectory pairs whose endpoints are too far apart to
// possibly satisfy a distance threshold.
//
// The index is an S x S grid of cells spanning a bounding box, with
// points bucketed by cell and start/end points kept distinguishable
// within a shared bucket via geom.Point.IsStart.
package spatialhash
