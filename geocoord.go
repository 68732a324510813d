// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package d20

import (
	"fmt"
	"math"
)

// GeoCoord is a point on the unit sphere given as latitude/longitude in
// radians. The polar axis is aligned to +Y (North) / -Y (South); longitude
// 0 falls on +X and increases eastward toward +Z.
type GeoCoord struct {
	Lat float64
	Lon float64
}

// ToVector converts a lat/lon coordinate to a unit vector.
func (g GeoCoord) ToVector() Vec3 {
	cl := math.Cos(g.Lat)
	return Vec3{
		X: cl * math.Cos(g.Lon),
		Y: math.Sin(g.Lat),
		Z: cl * math.Sin(g.Lon),
	}.Normalize()
}

// VectorToGeoCoord converts a vector (not necessarily of unit length) to
// latitude/longitude radians.
func VectorToGeoCoord(v Vec3) GeoCoord {
	r := v.Length()
	return GeoCoord{
		Lat: math.Asin(v.Y / r),
		Lon: math.Atan2(v.Z, v.X),
	}
}

// floorMod is the Euclidean modulo: unlike math.Mod, the result always
// takes the sign of b.
func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// ShortestArc computes the initial great-circle azimuth from start to goal
// (North=0, East=pi/2, measured clockwise), in [0, 2*pi). It returns
// ErrUndefinedDirection if start and goal are identical or antipodal, since
// no single initial bearing is defined in either case.
func ShortestArc(goal, start Vec3) (float64, error) {
	dot := start.Dot(goal)
	if dot <= -1.0+directionEpsilon {
		return 0, fmt.Errorf("%w: points are antipodal", ErrUndefinedDirection)
	}
	if dot > 1.0-directionEpsilon {
		return 0, fmt.Errorf("%w: points are identical", ErrUndefinedDirection)
	}

	startGeo := VectorToGeoCoord(start)
	goalGeo := VectorToGeoCoord(goal)

	dlon := floorMod(goalGeo.Lon-startGeo.Lon+math.Pi, 2*math.Pi) - math.Pi
	x := math.Sin(dlon) * math.Cos(goalGeo.Lat)
	y := math.Cos(startGeo.Lat)*math.Sin(goalGeo.Lat) -
		math.Sin(startGeo.Lat)*math.Cos(goalGeo.Lat)*math.Cos(dlon)
	az := math.Atan2(x, y)
	if az < 0 {
		az += 2 * math.Pi
	}
	return az, nil
}
