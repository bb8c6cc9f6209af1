package world

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0644)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DT != 0.2 {
		t.Errorf("expected dt 0.2, got %v", cfg.DT)
	}
	if cfg.StartTime != 1900 {
		t.Errorf("expected start 1900, got %v", cfg.StartTime)
	}
	if cfg.EndTime != 2100 {
		t.Errorf("expected end 2100, got %v", cfg.EndTime)
	}
	if cfg.PI != 1.65e9 {
		t.Errorf("expected initial population 1.65e9, got %v", cfg.PI)
	}
	if cfg.BRN != cfg.BRN1 {
		t.Error("published run has equal birth-rate normals")
	}
	if cfg.SWT1 != 1970 {
		t.Errorf("expected switch time 1970, got %v", cfg.SWT1)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")

	cfg := DefaultConfig()
	cfg.NRUN1 = 0.25
	cfg.EndTime = 2050

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadAppliesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := writeFile(path, "nrun1: 0.25\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.NRUN1 != 0.25 {
		t.Errorf("expected nrun1 0.25, got %v", cfg.NRUN1)
	}
	if cfg.PI != 1.65e9 {
		t.Errorf("expected defaults preserved, got pi %v", cfg.PI)
	}
}

func TestGetScenario(t *testing.T) {
	cfg, ok := GetScenario("nr-conserved")
	if !ok {
		t.Fatal("expected scenario, got none")
	}
	if cfg.NRUN1 != 0.25 {
		t.Errorf("expected nrun1 0.25, got %v", cfg.NRUN1)
	}
	if cfg.NRUN != 1 {
		t.Errorf("expected nrun untouched, got %v", cfg.NRUN)
	}

	if _, ok := GetScenario("nonexistent"); ok {
		t.Error("expected no scenario for unknown name")
	}
}

func TestListScenarios(t *testing.T) {
	names := ListScenarios()
	if len(names) == 0 {
		t.Fatal("expected scenarios")
	}
	found := false
	for _, n := range names {
		if n == "orig" {
			found = true
		}
	}
	if !found {
		t.Error("expected orig scenario in list")
	}
}

func TestSnapshotField(t *testing.T) {
	s := Snapshot{P: 1.65e9, POLR: 0.055, Time: 1900}

	if v, ok := s.Field("p"); !ok || v != 1.65e9 {
		t.Errorf("expected p 1.65e9, got %v (%v)", v, ok)
	}
	if v, ok := s.Field("polr"); !ok || v != 0.055 {
		t.Errorf("expected polr 0.055, got %v (%v)", v, ok)
	}
	if v, ok := s.Field("time"); !ok || v != 1900 {
		t.Errorf("expected time 1900, got %v (%v)", v, ok)
	}
	if _, ok := s.Field("bogus"); ok {
		t.Error("expected no value for unknown field")
	}

	names := FieldNames()
	if len(names) != 44 {
		t.Errorf("expected 44 field names, got %d", len(names))
	}
	for _, name := range names {
		if _, ok := s.Field(name); !ok {
			t.Errorf("field %q listed but not readable", name)
		}
	}
}
