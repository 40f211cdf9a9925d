package math

// ExtentsFromPoints returns the axis aligned bounds of the given points.
// An empty slice yields zero extents.
func ExtentsFromPoints(points []Vec3) Extents3D {
	if len(points) == 0 {
		return Extents3D{}
	}
	e := Extents3D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		e.Min.X = min(e.Min.X, p.X)
		e.Min.Y = min(e.Min.Y, p.Y)
		e.Min.Z = min(e.Min.Z, p.Z)
		e.Max.X = max(e.Max.X, p.X)
		e.Max.Y = max(e.Max.Y, p.Y)
		e.Max.Z = max(e.Max.Z, p.Z)
	}
	return e
}

// Center returns the midpoint of the extents.
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Size returns the edge lengths of the extents.
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}
