package leveldata

import (
	"errors"
	"os"
	"testing"
)

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "ramps.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if data.MapWidth != 96 || data.MapHeight != 64 || data.TileSize != 16 {
		t.Errorf("map = %dx%d tile %v, want 96x64 tile 16", data.MapWidth, data.MapHeight, data.TileSize)
	}
	if len(data.SolidRects) != 8 {
		t.Fatalf("got %d solid rects, want 8", len(data.SolidRects))
	}

	ramps := map[string]SolidRect{}
	for _, r := range data.SolidRects {
		if r.IsRamp() {
			ramps[r.SlopeType] = r
		}
	}
	if r, ok := ramps[SlopeUpRight]; !ok || r.X != 32 || r.Y != 32 {
		t.Errorf("up-right ramp = %+v, want at (32, 32)", r)
	}
	if r, ok := ramps[SlopeUpLeft]; !ok || r.X != 48 || r.Y != 32 {
		t.Errorf("up-left ramp = %+v, want at (48, 32)", r)
	}

	if len(data.Platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(data.Platforms))
	}
	if p := data.Platforms[0]; p.X != 64 || p.W != 32 || p.Float != 24 {
		t.Errorf("floating platform = %+v", p)
	}
	if p := data.Platforms[1]; p.Float != 0 {
		t.Errorf("static platform float = %v, want 0", p.Float)
	}

	if len(data.DeadZones) != 1 || data.DeadZones[0].W != 96 {
		t.Errorf("dead zones = %+v", data.DeadZones)
	}

	if len(data.SpawnPoints) != 2 || data.SpawnPoints[0].X != 8 {
		t.Errorf("spawns not sorted left to right: %+v", data.SpawnPoints)
	}
	if s := data.Spawn(); s.Index != 0 || s.X != 8 || s.Y != 48 {
		t.Errorf("Spawn() = %+v, want index 0 at (8, 48)", s)
	}
}

func TestLoadCollisionDataMissingFile(t *testing.T) {
	if _, err := LoadCollisionData(os.DirFS("testdata"), "missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 1 || names[0] != "ramps" {
		t.Errorf("names = %v, want [ramps]", names)
	}
	if levels["ramps"] == nil {
		t.Error("ramps level not loaded")
	}

	if _, _, err := LoadAllLevels(os.DirFS("."), "nowhere"); err == nil {
		t.Error("expected an error for a directory without levels")
	}
}

func TestParseGrid(t *testing.T) {
	data, err := ParseGrid([]string{
		"......",
		"--==..",
		".P./\\#",
		"######",
		"xx....",
	}, 16)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	if data.MapWidth != 96 || data.MapHeight != 80 {
		t.Errorf("map = %dx%d, want 96x80", data.MapWidth, data.MapHeight)
	}

	var solids, rampsRight, rampsLeft int
	for _, r := range data.SolidRects {
		switch r.SlopeType {
		case "":
			solids++
		case SlopeUpRight:
			rampsRight++
			if r.X != 48 || r.Y != 32 {
				t.Errorf("up-right ramp at (%v, %v), want (48, 32)", r.X, r.Y)
			}
		case SlopeUpLeft:
			rampsLeft++
		}
	}
	if solids != 7 || rampsRight != 1 || rampsLeft != 1 {
		t.Errorf("solids=%d right=%d left=%d, want 7 1 1", solids, rampsRight, rampsLeft)
	}

	if len(data.Platforms) != 2 {
		t.Fatalf("got %d platforms, want 2: %+v", len(data.Platforms), data.Platforms)
	}
	static, floating := data.Platforms[0], data.Platforms[1]
	if static.X != 0 || static.W != 32 || static.H != 4 || static.Float != 0 {
		t.Errorf("static platform = %+v", static)
	}
	if floating.X != 32 || floating.W != 32 || floating.Float != 48 {
		t.Errorf("floating platform = %+v", floating)
	}

	if len(data.DeadZones) != 2 {
		t.Errorf("got %d dead zones, want 2", len(data.DeadZones))
	}
	if s := data.Spawn(); s.X != 24 || s.Y != 48 {
		t.Errorf("spawn = %+v, want feet at (24, 48)", s)
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		size float64
		want error
	}{
		{"no rows", nil, 16, ErrEmptyGrid},
		{"blank rows", []string{"", ""}, 16, ErrEmptyGrid},
		{"zero tile size", []string{"#"}, 0, ErrEmptyGrid},
		{"unknown rune", []string{"#?#"}, 16, ErrUnknownTile},
		{"ragged rows", []string{"###", "#", "###"}, 16, ErrRaggedGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGrid(tt.rows, tt.size); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSpawnFallback(t *testing.T) {
	data, err := ParseGrid([]string{"###"}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if s := data.Spawn(); s.X != 16 || s.Y != 16 {
		t.Errorf("fallback spawn = %+v, want (16, 16)", s)
	}
}

func TestLoadBuiltin(t *testing.T) {
	name, data, err := Load("", 16)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != BuiltinName {
		t.Errorf("name = %q, want %q", name, BuiltinName)
	}
	if data.MapWidth != 72*16 || data.MapHeight != 18*16 {
		t.Errorf("map = %dx%d, want %dx%d", data.MapWidth, data.MapHeight, 72*16, 18*16)
	}
	if s := data.Spawn(); s.X != 40 || s.Y != 256 {
		t.Errorf("spawn = %+v, want (40, 256)", s)
	}
	if len(data.DeadZones) == 0 {
		t.Error("built-in course has no dead zones")
	}

	floating := 0
	for _, p := range data.Platforms {
		if p.Float > 0 {
			floating++
		}
	}
	if floating != 1 {
		t.Errorf("floating platforms = %d, want 1", floating)
	}

	for i, row := range BuiltinGrid {
		if len(row) != 72 {
			t.Errorf("row %d has %d tiles, want 72", i, len(row))
		}
	}
}

func TestLoadFromPath(t *testing.T) {
	name, data, err := Load("testdata/ramps.tmx", 16)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "ramps" {
		t.Errorf("name = %q, want ramps", name)
	}
	if data.TileSize != 16 {
		t.Errorf("tile size = %v, want 16", data.TileSize)
	}

	if _, _, err := Load("testdata/missing.tmx", 16); err == nil {
		t.Error("expected error for missing file")
	}
}
