// env_test.go
package slip

import (
	"strings"
	"testing"
)

func wantBinding(t *testing.T, env *Environment, name string, want Value) {
	t.Helper()
	got, ok := env.Get(name)
	if !ok {
		t.Fatalf("symbol %s not bound", name)
	}
	if !got.Equal(want) {
		t.Fatalf("symbol %s: want %s, got %s", name, want, got)
	}
}

func Test_Env_Current_Layer_Wins(t *testing.T) {
	env := FromLayer(Layer{"x": Int(1)})
	env.SharedSet("x", Int(2))
	wantBinding(t, env, "x", Int(1))
}

func Test_Env_Shared_Shadows_Outer_Lexical(t *testing.T) {
	root := FromLayer(Layer{"x": Int(1)})
	root.SharedSet("x", Int(2))

	// one scope in: the current layer is empty, so the shared layer is
	// consulted before the root's lexical binding
	wantBinding(t, root.Inner(), "x", Int(2))
	wantBinding(t, root.Overlay(Layer{"y": Int(3)}), "x", Int(2))
}

func Test_Env_Falls_Through_To_Outer(t *testing.T) {
	root := FromLayer(Layer{"z": Int(9)})
	inner := root.Inner().Inner()
	wantBinding(t, inner, "z", Int(9))
}

func Test_Env_Overlay_Binds_And_Expires(t *testing.T) {
	root := NewEnvironment()
	scope := root.Overlay(Layer{"v": Str("here")})
	wantBinding(t, scope, "v", Str("here"))
	if _, ok := root.Get("v"); ok {
		t.Fatal("overlay binding leaked into the outer environment")
	}
}

func Test_Env_Set_Is_Local(t *testing.T) {
	root := NewEnvironment()
	inner := root.Inner()
	inner.Set("w", Int(7))
	wantBinding(t, inner, "w", Int(7))
	if _, ok := root.Get("w"); ok {
		t.Fatal("Set escaped the current layer")
	}
}

func Test_Env_SharedSet_Visible_Everywhere(t *testing.T) {
	root := NewEnvironment()
	deep := root.Inner().Overlay(Layer{"a": Int(1)}).Inner()
	deep.SharedSet("g", Int(42))

	wantBinding(t, root, "g", Int(42))
	wantBinding(t, deep, "g", Int(42))
	if v, ok := root.SharedGet("g"); !ok || !v.Equal(Int(42)) {
		t.Fatalf("SharedGet: want 42, got %v (ok=%v)", v, ok)
	}
}

func Test_Env_SharedGet_Skips_Lexical_Layers(t *testing.T) {
	env := FromLayer(Layer{"x": Int(1)})
	if _, ok := env.SharedGet("x"); ok {
		t.Fatal("SharedGet saw a lexical binding")
	}
}

func Test_Env_Missing_Symbol(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("ghost"); ok {
		t.Fatal("unbound symbol resolved")
	}
}

func Test_Env_SharedUpdate_Batches_Writes(t *testing.T) {
	env := NewEnvironment()
	env.SharedUpdate(func(l Layer) {
		l["a"] = Int(1)
		l["b"] = Int(2)
	})
	wantBinding(t, env, "a", Int(1))
	wantBinding(t, env, "b", Int(2))
}

func Test_Env_Reentrant_Shared_Write_Panics(t *testing.T) {
	env := NewEnvironment()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("reentrant shared write did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "reentrant shared-layer write") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	env.SharedUpdate(func(Layer) {
		env.SharedSet("boom", Int(1))
	})
}
