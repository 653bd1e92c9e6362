// sphere_test.go
package raytrace

import "testing"

func testMaterial(ambient Color) Material {
	return NewMaterial(ambient, NewColor(0, 0, 0), NewColor(0, 0, 0), 1, 0)
}

func Test_Sphere_Intersect_Head_On(t *testing.T) {
	s := NewSphere(NewPoint3(0, 0, 5), 1, testMaterial(NewColor(1, 0, 0)))
	hit, ok := s.Intersect(NewRay(NewPoint3(0, 0, 0), NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("want hit")
	}
	wantNear(t, hit.T, 4)
	wantPointNear(t, hit.Point, NewPoint3(0, 0, 4))
	wantVecNear(t, hit.Normal, NewVec3(0, 0, -1))
	if hit.Material.Ambient != NewColor(1, 0, 0) {
		t.Fatalf("wrong material: %s", hit.Material)
	}
}

func Test_Sphere_Intersect_Miss(t *testing.T) {
	s := NewSphere(NewPoint3(0, 0, 5), 1, testMaterial(Color{}))
	if _, ok := s.Intersect(NewRay(NewPoint3(0, 0, 0), NewVec3(0, 1, 0))); ok {
		t.Fatal("want miss")
	}
	// a tangent offset just outside the radius also misses
	if _, ok := s.Intersect(NewRay(NewPoint3(0, 1.001, 0), NewVec3(0, 0, 1))); ok {
		t.Fatal("want miss")
	}
}

func Test_Sphere_Intersect_From_Inside(t *testing.T) {
	s := NewSphere(NewPoint3(0, 0, 5), 1, testMaterial(Color{}))
	hit, ok := s.Intersect(NewRay(NewPoint3(0, 0, 5), NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("want hit from inside")
	}
	wantNear(t, hit.T, 1)
	wantPointNear(t, hit.Point, NewPoint3(0, 0, 6))
	// the normal points outward even when hit from inside
	wantVecNear(t, hit.Normal, NewVec3(0, 0, 1))
}

func Test_Sphere_Intersect_Behind_Origin(t *testing.T) {
	s := NewSphere(NewPoint3(0, 0, -5), 1, testMaterial(Color{}))
	if _, ok := s.Intersect(NewRay(NewPoint3(0, 0, 0), NewVec3(0, 0, 1))); ok {
		t.Fatal("want miss for sphere behind the ray")
	}
}

func Test_Sphere_Intersect_Skips_Own_Surface(t *testing.T) {
	// a ray starting on the surface ignores the root at t=0 and reports
	// the far side, which keeps shadow and reflection rays clean
	s := NewSphere(NewPoint3(0, 0, 5), 1, testMaterial(Color{}))
	hit, ok := s.Intersect(NewRay(NewPoint3(0, 0, 4), NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("want hit")
	}
	wantNear(t, hit.T, 2)
	wantPointNear(t, hit.Point, NewPoint3(0, 0, 6))
}

func Test_Sphere_Normal_Scales_With_Radius(t *testing.T) {
	s := NewSphere(NewPoint3(0, 0, 10), 2, testMaterial(Color{}))
	hit, ok := s.Intersect(NewRay(NewPoint3(0, 0, 0), NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("want hit")
	}
	wantNear(t, hit.T, 8)
	wantNear(t, hit.Normal.Norm(), 1)
	wantVecNear(t, hit.Normal, NewVec3(0, 0, -1))
}
