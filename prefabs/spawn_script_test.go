package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/ageofpanda/world"
)

func TestRunSpawnScript(t *testing.T) {
	specs, err := RunSpawnScript("lighthouse", SpawnEnv{MapID: 2, Width: 40, Height: 15, TileSize: 16, Ground: 205})
	if err != nil {
		t.Fatalf("RunSpawnScript: %v", err)
	}
	if len(specs) != 6 {
		t.Fatalf("expected 6 spawns, got %d", len(specs))
	}
	first := specs[0]
	if first.Kind != "obstacle" || first.X != 224 || first.Y != 192 || first.AtX != 128 {
		t.Fatalf("first spawn %+v", first)
	}
	if specs[1].Kind != "trap" || specs[1].X != 256 {
		t.Fatalf("second spawn %+v", specs[1])
	}

	triggers, err := Triggers(specs)
	if err != nil {
		t.Fatalf("Triggers: %v", err)
	}
	if triggers[1].Kind != world.SpawnTrap || triggers[0].Fired {
		t.Fatalf("triggers %+v", triggers[:2])
	}
}

func TestRunSpawnSourceUsesEnv(t *testing.T) {
	src := []byte(`spawns := [{kind: "trap", x: map_width * tile - tile, y: ground, at_x: 0}]`)
	specs, err := runSpawnSource("env", src, SpawnEnv{Width: 10, TileSize: 16, Ground: 192})
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 1 || specs[0].X != 144 || specs[0].Y != 192 {
		t.Fatalf("specs %+v", specs)
	}
}

func TestRunSpawnSourceErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"not_an_array", `spawns := 5`, true},
		{"element_not_a_map", `spawns := [1, 2]`, true},
		{"compile_error", `spawns := [`, false},
		{"unresolved_name", `x := undefined_thing + 1`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := runSpawnSource(c.name, []byte(c.src), SpawnEnv{})
			if err == nil {
				t.Fatalf("expected an error")
			}
			if errors.Is(err, ErrInvalidSpawn) != c.invalid {
				t.Fatalf("ErrInvalidSpawn=%v, want %v: %v", errors.Is(err, ErrInvalidSpawn), c.invalid, err)
			}
		})
	}

	specs, err := runSpawnSource("empty", []byte(`a := 1`), SpawnEnv{})
	if err != nil || specs != nil {
		t.Fatalf("a script without spawns yields nothing: %v %v", specs, err)
	}
}

func TestSpawnSpecTrigger(t *testing.T) {
	cases := []struct {
		name string
		spec SpawnSpec
		kind world.SpawnKind
		ok   bool
	}{
		{"obstacle", SpawnSpec{Kind: "obstacle", X: 10, Y: 192, AtX: 0}, world.SpawnObstacle, true},
		{"default_kind", SpawnSpec{X: 10, Y: 192}, world.SpawnObstacle, true},
		{"trap", SpawnSpec{Kind: " Trap ", X: 10, Y: 192}, world.SpawnTrap, true},
		{"unknown_kind", SpawnSpec{Kind: "coin", X: 10, Y: 192}, 0, false},
		{"negative_x", SpawnSpec{Kind: "trap", X: -1, Y: 192}, 0, false},
		{"zero_y", SpawnSpec{Kind: "trap", X: 1}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			trig, err := c.spec.Trigger()
			if !c.ok {
				if !errors.Is(err, ErrInvalidSpawn) {
					t.Fatalf("expected ErrInvalidSpawn, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if trig.Kind != c.kind || trig.X != c.spec.X || trig.Y != c.spec.Y {
				t.Fatalf("trigger %+v", trig)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	got, err := DecodeComponentSpec[SpawnSpec](map[string]any{"kind": "trap", "x": 3, "y": 4.5, "at_x": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != "trap" || got.X != 3 || got.Y != 4.5 || got.AtX != 1 {
		t.Fatalf("decoded %+v", got)
	}
	if zero, err := DecodeComponentSpec[SpawnSpec](nil); err != nil || zero != (SpawnSpec{}) {
		t.Fatalf("nil should decode to the zero value")
	}
}
