// Package cities ships the sample location graph of 15 US cities joined by
// 30 roads, plus the coordinate and spatial helpers a renderer needs.
//
// Coordinates
//
//	Cities are placed at packed degree-minute-second integers: latitude
//	42°21'29" N is the row 422129 and longitude 71°03'49" W is the column
//	-710349. ParseDMS reads the "42_21_29" notation into that packed form and
//	ToDegrees unpacks it into decimal degrees. Edge weights are Euclidean
//	distances between packed points, so they rank roads but are not a length
//	unit; GreatCircleKm measures a route on the sphere with paulmach/orb.
//
// Spatial lookup
//
//	Index is an R-tree (dhconnelly/rtreego) over node points answering
//	Nearest and Within queries. Canvas projects a graph onto a width×height
//	drawing surface with a 10% margin and hit-tests pointer positions against
//	the drawn dots.
package cities
