package config

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	in := &Config{
		ExactMatch: true,
		Trace:      true,
		LogLevel:   "debug",
		Slots: []Slot{
			{ID: 0, Name: "League of Legends"},
			{ID: 3, Name: "Notepad"},
		},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.ExactMatch != in.ExactMatch || out.Trace != in.Trace || out.LogLevel != in.LogLevel {
		t.Fatalf("loaded %+v want %+v", out, in)
	}
	if len(out.Slots) != 2 || out.Slots[0] != in.Slots[0] || out.Slots[1] != in.Slots[1] {
		t.Fatalf("slots %+v want %+v", out.Slots, in.Slots)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		slots []Slot
		ok    bool
	}{
		{"valid", []Slot{{ID: 0, Name: "a"}, {ID: 99, Name: "b"}}, true},
		{"id too high", []Slot{{ID: 100, Name: "a"}}, false},
		{"negative id", []Slot{{ID: -1, Name: "a"}}, false},
		{"duplicate id", []Slot{{ID: 5, Name: "a"}, {ID: 5, Name: "b"}}, false},
		{"empty name", []Slot{{ID: 0, Name: ""}}, false},
	}
	for _, c := range cases {
		err := (&Config{Slots: c.slots}).validate()
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
	}
}
