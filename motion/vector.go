// This file is part of Retrogate.
//
// Retrogate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrogate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrogate.  If not, see <https://www.gnu.org/licenses/>.

package motion

import (
	"fmt"
	"math"
)

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func (v Vec3) scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// quaternion with real part w and imaginary part xyz.
type quaternion struct {
	w   float64
	xyz Vec3
}

var identity = quaternion{w: 1}

// rotation of angle radians about the axis. the axis does not need to be
// normalised but must not be zero length.
func makeQuaternion(axis Vec3, angle float64) quaternion {
	l := axis.length()
	if l == 0 {
		return identity
	}
	s := math.Sin(angle / 2)
	return quaternion{
		w:   math.Cos(angle / 2),
		xyz: axis.scale(s / l),
	}
}

func (q quaternion) mul(r quaternion) quaternion {
	return quaternion{
		w:   q.w*r.w - q.xyz.dot(r.xyz),
		xyz: r.xyz.scale(q.w).add(q.xyz.scale(r.w)).add(q.xyz.cross(r.xyz)),
	}
}

// inverse of a unit quaternion
func (q quaternion) inverse() quaternion {
	return quaternion{w: q.w, xyz: q.xyz.scale(-1)}
}

func (q quaternion) rotate(v Vec3) Vec3 {
	p := q.mul(quaternion{xyz: v}).mul(q.inverse())
	return p.xyz
}
