package geodesic_test

import (
	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
)

// manualNetwork is the 8-vertex undirected fixture used across the distance
// tests:
//
//	1-(1.2)-2  2-(0.7)-3  3-(0.9)-4  4-(0.1)-5
//	5-(1.6)-6  6-(1.3)-7  7-(0.85)-1 1-(0.7)-5
//	2-(0.3)-6  3-(0.8)-7  4-(0.8)-1  5-(1.6)-8
func manualNetwork() *edgelist.EdgeList {
	el := edgelist.New(false)
	el.InsertEdge(1, 2, 1.2)
	el.InsertEdge(2, 3, 0.7)
	el.InsertEdge(3, 4, 0.9)
	el.InsertEdge(4, 5, 0.1)
	el.InsertEdge(5, 6, 1.6)
	el.InsertEdge(6, 7, 1.3)
	el.InsertEdge(7, 1, 0.85)
	el.InsertEdge(1, 5, 0.7)
	el.InsertEdge(2, 6, 0.3)
	el.InsertEdge(3, 7, 0.8)
	el.InsertEdge(4, 1, 0.8)
	el.InsertEdge(5, 8, 1.6)
	return el
}
