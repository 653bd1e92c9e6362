// builtins.go: the scene description natives.
//
// Register binds the raytracing vocabulary into an environment layer next
// to the prelude. Geometry, materials, cameras and scenes cross the
// interpreter boundary as foreign values; the builtins only decode
// arguments, call into the tracer and wrap the results back up.

package raytrace

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/slip-lang/slip"
)

// Register binds every raytracing native into l.
func Register(l slip.Layer) {
	l["point"] = slip.NativeFn("point", builtinPoint)
	l["vector"] = slip.NativeFn("vector", builtinVector)
	l["color"] = slip.NativeFn("color", builtinColor)
	l["light"] = slip.NativeFn("light", builtinLight)
	l["material"] = slip.NativeFn("material", builtinMaterial)
	l["plane"] = slip.NativeFn("plane", builtinPlane)
	l["checkerboard"] = slip.NativeFn("checkerboard", builtinCheckerboard)
	l["sphere"] = slip.NativeFn("sphere", builtinSphere)
	l["scene"] = slip.NativeFn("scene", builtinScene)
	l["scene-add-object"] = slip.NativeFn("scene-add-object", builtinSceneAddObject)
	l["scene-add-light"] = slip.NativeFn("scene-add-light", builtinSceneAddLight)
	l["camera"] = slip.NativeFn("camera", builtinCamera)
	l["render"] = slip.NativeFn("render", builtinRender)
	l["vadd"] = slip.NativeFn("vadd", builtinVAdd)
	l["vsub"] = slip.NativeFn("vsub", builtinVSub)
	l["vmul"] = slip.NativeFn("vmul", builtinVMul)
}

// (point x y z)
func builtinPoint(env *slip.Environment, args slip.Value) (slip.Value, error) {
	x, y, z, err := threeFloats(env, args)
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewPoint3(x, y, z)), nil
}

// (vector x y z)
func builtinVector(env *slip.Environment, args slip.Value) (slip.Value, error) {
	x, y, z, err := threeFloats(env, args)
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewVec3(x, y, z)), nil
}

// (color r g b)
func builtinColor(env *slip.Environment, args slip.Value) (slip.Value, error) {
	r, g, b, err := threeFloats(env, args)
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewColor(r, g, b)), nil
}

func threeFloats(env *slip.Environment, args slip.Value) (x, y, z float64, err error) {
	vs, err := slip.EvalArgsN(env, args, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	if x, err = slip.AsFloat(vs[0]); err != nil {
		return 0, 0, 0, err
	}
	if y, err = slip.AsFloat(vs[1]); err != nil {
		return 0, 0, 0, err
	}
	if z, err = slip.AsFloat(vs[2]); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

// (light position color)
func builtinLight(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	pos, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	col, err := slip.As[Color](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewLight(pos, col)), nil
}

// (material ambient diffuse specular shininess mirror)
func builtinMaterial(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 5)
	if err != nil {
		return slip.Nil, err
	}
	amb, err := slip.As[Color](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	dif, err := slip.As[Color](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	spe, err := slip.As[Color](vs[2])
	if err != nil {
		return slip.Nil, err
	}
	shi, err := slip.AsFloat(vs[3])
	if err != nil {
		return slip.Nil, err
	}
	mir, err := slip.AsFloat(vs[4])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewMaterial(amb, dif, spe, shi, mir)), nil
}

// (plane position normal material)
func builtinPlane(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 3)
	if err != nil {
		return slip.Nil, err
	}
	pos, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	normal, err := slip.As[Vec3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	mat, err := slip.As[Material](vs[2])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap[Object](NewPlane(pos, normal, mat)), nil
}

// (checkerboard position normal material1 material2 scale up)
func builtinCheckerboard(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 6)
	if err != nil {
		return slip.Nil, err
	}
	pos, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	normal, err := slip.As[Vec3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	mat1, err := slip.As[Material](vs[2])
	if err != nil {
		return slip.Nil, err
	}
	mat2, err := slip.As[Material](vs[3])
	if err != nil {
		return slip.Nil, err
	}
	scale, err := slip.AsFloat(vs[4])
	if err != nil {
		return slip.Nil, err
	}
	up, err := slip.As[Vec3](vs[5])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap[Object](NewCheckerboard(pos, normal, mat1, mat2, scale, up)), nil
}

// (sphere center radius material)
func builtinSphere(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 3)
	if err != nil {
		return slip.Nil, err
	}
	center, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	radius, err := slip.AsFloat(vs[1])
	if err != nil {
		return slip.Nil, err
	}
	mat, err := slip.As[Material](vs[2])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap[Object](NewSphere(center, radius, mat)), nil
}

// (scene ambient objects lights) assembles a scene from an ambient color,
// a list of objects and a list of lights. The two lists have their
// elements evaluated a second time, so both (list s1 s2) and a quoted
// list of symbols '(s1 s2) work.
func builtinScene(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 3)
	if err != nil {
		return slip.Nil, err
	}
	amb, err := slip.As[Color](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	objs, err := slip.ListSlice(vs[1])
	if err != nil {
		return slip.Nil, err
	}
	lgts, err := slip.ListSlice(vs[2])
	if err != nil {
		return slip.Nil, err
	}

	sc := NewScene()
	sc.SetAmbient(amb)
	for _, o := range objs {
		ov, err := slip.Eval(env, o)
		if err != nil {
			return slip.Nil, err
		}
		obj, err := slip.As[Object](ov)
		if err != nil {
			return slip.Nil, err
		}
		sc.AddObject(obj)
	}
	for _, l := range lgts {
		lv, err := slip.Eval(env, l)
		if err != nil {
			return slip.Nil, err
		}
		lgt, err := slip.As[Light](lv)
		if err != nil {
			return slip.Nil, err
		}
		sc.AddLight(lgt)
	}
	return slip.Wrap(sc), nil
}

// (scene-add-object scene object) returns a scene with the object added;
// the original scene value is unchanged.
func builtinSceneAddObject(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	sc, err := slip.As[Scene](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	obj, err := slip.As[Object](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	sc.AddObject(obj)
	return slip.Wrap(sc), nil
}

// (scene-add-light scene light) returns a scene with the light added;
// the original scene value is unchanged.
func builtinSceneAddLight(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	sc, err := slip.As[Scene](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	lgt, err := slip.As[Light](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	sc.AddLight(lgt)
	return slip.Wrap(sc), nil
}

// (camera position center up fovy width height)
func builtinCamera(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 6)
	if err != nil {
		return slip.Nil, err
	}
	pos, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	center, err := slip.As[Point3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	up, err := slip.As[Vec3](vs[2])
	if err != nil {
		return slip.Nil, err
	}
	fovy, err := slip.AsFloat(vs[3])
	if err != nil {
		return slip.Nil, err
	}
	w, err := slip.AsInt(vs[4])
	if err != nil {
		return slip.Nil, err
	}
	h, err := slip.AsInt(vs[5])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(NewCamera(pos, center, up, fovy, int(w), int(h))), nil
}

// (render camera scene depth subpixels path) traces the scene and writes
// it to path as a PNG. Returns nil.
func builtinRender(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 5)
	if err != nil {
		return slip.Nil, err
	}
	cam, err := slip.As[Camera](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	sc, err := slip.As[Scene](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	depth, err := slip.AsInt(vs[2])
	if err != nil {
		return slip.Nil, err
	}
	subp, err := slip.AsInt(vs[3])
	if err != nil {
		return slip.Nil, err
	}
	out, err := slip.AsString(vs[4])
	if err != nil {
		return slip.Nil, err
	}

	fmt.Printf("Rendering to %s...\n", out)
	img, err := cam.Render(&sc, int(depth), int(subp))
	if err != nil {
		return slip.Nil, &slip.RuntimeError{Message: err.Error()}
	}
	if err := writePNG(out, img); err != nil {
		return slip.Nil, &slip.RuntimeError{Message: err.Error()}
	}
	return slip.Nil, nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// (vadd a b) adds vectors, or offsets a point by a vector in either
// argument order.
func builtinVAdd(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	if a, err := slip.As[Vec3](vs[0]); err == nil {
		if b, err := slip.As[Vec3](vs[1]); err == nil {
			return slip.Wrap(a.Add(b)), nil
		}
		b, err := slip.As[Point3](vs[1])
		if err != nil {
			return slip.Nil, err
		}
		return slip.Wrap(b.Add(a)), nil
	}
	a, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	b, err := slip.As[Vec3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(a.Add(b)), nil
}

// (vsub a b) subtracts vectors; with a point on either side it offsets
// the point against the vector, so (vsub v p) is p - v.
func builtinVSub(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	if a, err := slip.As[Vec3](vs[0]); err == nil {
		if b, err := slip.As[Vec3](vs[1]); err == nil {
			return slip.Wrap(a.Sub(b)), nil
		}
		b, err := slip.As[Point3](vs[1])
		if err != nil {
			return slip.Nil, err
		}
		return slip.Wrap(b.SubVec(a)), nil
	}
	a, err := slip.As[Point3](vs[0])
	if err != nil {
		return slip.Nil, err
	}
	b, err := slip.As[Vec3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(a.SubVec(b)), nil
}

// (vmul a b) scales a vector by a number, in either argument order.
func builtinVMul(env *slip.Environment, args slip.Value) (slip.Value, error) {
	vs, err := slip.EvalArgsN(env, args, 2)
	if err != nil {
		return slip.Nil, err
	}
	if a, err := slip.As[Vec3](vs[0]); err == nil {
		s, err := slip.AsFloat(vs[1])
		if err != nil {
			return slip.Nil, err
		}
		return slip.Wrap(a.Scale(s)), nil
	}
	s, err := slip.AsFloat(vs[0])
	if err != nil {
		return slip.Nil, err
	}
	b, err := slip.As[Vec3](vs[1])
	if err != nil {
		return slip.Nil, err
	}
	return slip.Wrap(b.Scale(s)), nil
}
