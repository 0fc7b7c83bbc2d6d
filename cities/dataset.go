package cities

import (
	"github.com/katalvlaran/waypoint/core"
)

// City names used as node IDs.
const (
	Boston       = "Boston, MA"
	NewYork      = "New York, NY"
	Washington   = "Washington, DC"
	Atlanta      = "Atlanta, GA"
	Miami        = "Miami, FL"
	Detroit      = "Detroit, MI"
	Chicago      = "Chicago, IL"
	Houston      = "Houston, TX"
	Dallas       = "Dallas, TX"
	Denver       = "Denver, CO"
	Phoenix      = "Phoenix, AZ"
	LasVegas     = "Las Vegas, NV"
	LosAngeles   = "Los Angeles, CA"
	Seattle      = "Seattle, WA"
	SanFrancisco = "San Francisco, CA"
)

// City is one dataset row in DMS notation.
type City struct {
	Name string
	Lat  string // row
	Lon  string // column
}

// Cities lists the dataset in insertion order.
var Cities = []City{
	{Boston, "42_21_29", "-71_03_49"},
	{NewYork, "40_42_46", "-74_00_21"},
	{Washington, "38_54_17", "-77_00_59"},
	{Atlanta, "33_45_18", "-84_23_24"},
	{Miami, "25_46_31", "-80_12_32"},
	{Detroit, "42_19_53", "-83_02_45"},
	{Chicago, "41_50_13", "-87_41_05"},
	{Houston, "29_45_46", "-95_22_59"},
	{Dallas, "32_47_00", "-96_48_00"},
	{Denver, "39_45_43", "-104_52_52"},
	{Phoenix, "33_27_00", "-112_04_00"},
	{LasVegas, "36_10_30", "-115_08_11"},
	{LosAngeles, "34_03_00", "-118_15_00"},
	{Seattle, "47_36_35", "-122_19_59"},
	{SanFrancisco, "37_47_00", "-122_25_00"},
}

// Connections lists the 30 two-way roads.
var Connections = [][2]string{
	{Boston, NewYork},
	{Boston, Detroit},
	{NewYork, Washington},
	{Washington, Atlanta},
	{NewYork, Detroit},
	{NewYork, Chicago},
	{NewYork, Miami},
	{Washington, Chicago},
	{Atlanta, Dallas},
	{Atlanta, Miami},
	{Atlanta, Houston},
	{Miami, Dallas},
	{Miami, Houston},
	{Detroit, Chicago},
	{Detroit, Seattle},
	{Chicago, Dallas},
	{Chicago, Denver},
	{Dallas, Houston},
	{Dallas, Phoenix},
	{Denver, Phoenix},
	{Denver, Seattle},
	{Denver, LasVegas},
	{Denver, SanFrancisco},
	{Denver, LosAngeles},
	{LasVegas, Phoenix},
	{LasVegas, Dallas},
	{LasVegas, LosAngeles},
	{Phoenix, LosAngeles},
	{SanFrancisco, Seattle},
	{SanFrancisco, LosAngeles},
}

// Graph builds the city graph. Each call returns a fresh graph.
func Graph() *core.Graph {
	g := core.NewGraphWithCapacity(len(Cities))
	for _, c := range Cities {
		// dataset literals are valid and names non-empty
		_ = g.AddNode(c.Name, core.NewPoint(MustParseDMS(c.Lat), MustParseDMS(c.Lon)))
	}
	for _, r := range Connections {
		g.AddEdge(r[0], r[1])
	}

	return g
}
