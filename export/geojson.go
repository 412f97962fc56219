// Package export converts airfoils into GeoJSON so that plotting and CAD tools
// can consume them as plain polylines.
package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"honnef.co/go/airfoil"
)

// LineString converts a polyline to an orb line string.
func LineString(p airfoil.Polyline) orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, pt := range p {
		ls[i] = orb.Point{pt.X, pt.Y}
	}
	return ls
}

// Outline returns the closed outline of a: the upper surface followed by the
// lower surface without its shared leading edge.
func Outline(a *airfoil.Airfoil) orb.Ring {
	ring := orb.Ring(LineString(a.Upper))
	lower := a.Lower
	if len(lower) > 0 && len(a.Upper) > 0 && lower[0] == a.Upper[len(a.Upper)-1] {
		lower = lower[1:]
	}
	for _, pt := range lower {
		ring = append(ring, orb.Point{pt.X, pt.Y})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// FeatureCollection returns one LineString feature per surface. Each feature
// carries the surface, airfoil name and chord as properties.
func FeatureCollection(a *airfoil.Airfoil) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range []airfoil.Surface{airfoil.Upper, airfoil.Lower} {
		f := geojson.NewFeature(LineString(a.Surface(s)))
		f.Properties["surface"] = s.String()
		f.Properties["name"] = a.Name
		f.Properties["chord"] = a.Chord
		fc.Append(f)
	}
	return fc
}

// GeoJSON marshals [FeatureCollection] of a.
func GeoJSON(a *airfoil.Airfoil) ([]byte, error) {
	b, err := FeatureCollection(a).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshaling airfoil to GeoJSON")
	}
	return b, nil
}
