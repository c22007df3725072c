package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestDefaultOptionsAreValid(t *testing.T) {
	o := DefaultOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if o.AlienCount() != 15 {
		t.Fatalf("alien count: got %d", o.AlienCount())
	}
}

func TestLoadOptionsSkipsMissingFile(t *testing.T) {
	o, err := LoadOptions(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if o.Lives != DefaultOptions().Lives {
		t.Fatalf("lives: got %d", o.Lives)
	}
}

func TestLoadOptionsFromFileAndEnv(t *testing.T) {
	path := writeEnv(t, "INVADERS_LIVES=5\nINVADERS_ROWS=2, 3\nINVADERS_SPEED_MULTIPLIER=0.1\nINVADERS_SEED=9\n")
	t.Setenv("INVADERS_LIVES", "7")

	o, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if o.Lives != 7 {
		t.Fatalf("environment must win over the file, lives %d", o.Lives)
	}
	if len(o.Rows) != 2 || o.Rows[0] != 2 || o.Rows[1] != 3 {
		t.Fatalf("rows: %v", o.Rows)
	}
	if o.SpeedMultiplier != 0.1 || o.Seed != 9 {
		t.Fatalf("multiplier %v seed %d", o.SpeedMultiplier, o.Seed)
	}
}

func TestLoadOptionsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"not a number", "INVADERS_LIVES=many\n", "INVADERS_LIVES"},
		{"bad rows", "INVADERS_ROWS=5,x\n", "INVADERS_ROWS"},
		{"negative row", "INVADERS_ROWS=5,-1\n", "negative row"},
		{"zero lives", "INVADERS_LIVES=0\n", "lives must be positive"},
		{"empty formation", "INVADERS_ROWS=0,0\n", "no aliens"},
		{"multiplier", "INVADERS_SPEED_MULTIPLIER=1\n", "speed multiplier"},
		{"rocket speed", "INVADERS_ROCKET_SPEED=0\n", "rocket speed"},
		{"cooldown", "INVADERS_ROCKET_COOLDOWN=-5\n", "rocket cooldown"},
		{"restart delay", "INVADERS_RESTART_DELAY=0\n", "restart delay"},
		{"alien size", "INVADERS_ALIEN_SIZE=0\n", "sprite sizes"},
		{"cannon size", "INVADERS_CANNON_SIZE=-1\n", "sprite sizes"},
		{"horizontal step", "INVADERS_ALIEN_HOR_STEP=0\n", "formation steps"},
		{"vertical step", "INVADERS_ALIEN_VER_STEP=-30\n", "formation steps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOptions(writeEnv(t, tt.env))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestParseRowsSkipsBlanks(t *testing.T) {
	rows, err := parseRows(" 4,,6 ,")
	if err != nil {
		t.Fatalf("parseRows: %v", err)
	}
	if len(rows) != 2 || rows[0] != 4 || rows[1] != 6 {
		t.Fatalf("rows: %v", rows)
	}
}

func TestScreenSizeFollowsOverrides(t *testing.T) {
	t.Setenv("INVADERS_WIDTH", "600.4")
	t.Setenv("INVADERS_HEIGHT", "900")
	o, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if w, h := o.ScreenSize(); w != 600 || h != 900 {
		t.Fatalf("screen size: %dx%d", w, h)
	}
}

func TestTickInterval(t *testing.T) {
	o := DefaultOptions()
	o.StartingSpeed = 250
	if got := o.TickInterval().Milliseconds(); got != 250 {
		t.Fatalf("interval: %dms", got)
	}
}
