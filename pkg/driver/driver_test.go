package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRunConfigParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mython.yml")
	contents := "entry: main.my\ncheck: true\nrepl_prompt: '>>> '\nrepl_accent_color: '#ff00ff'\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.Entry != "main.my" || !cfg.Check || cfg.REPLPrompt != ">>> " || cfg.REPLAccentColor != "#ff00ff" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadDefaultRunConfigMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	cfg, err := LoadDefaultRunConfig()
	if err != nil {
		t.Fatalf("LoadDefaultRunConfig: %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config for absent file, got %+v", cfg)
	}
}

func TestParseFixtureSuiteAndRun(t *testing.T) {
	data := []byte(`
suite: arithmetic
fixtures:
  - name: addition
    source: |
      print 1 + 2
    expected: |
      3
  - name: concatenation
    source: |
      print 'a' + 'b'
    expected: |
      ab
`)
	suite, err := ParseFixtureSuite(data)
	if err != nil {
		t.Fatalf("ParseFixtureSuite: %v", err)
	}
	if suite.Suite != "arithmetic" || len(suite.Fixtures) != 2 {
		t.Fatalf("unexpected suite: %+v", suite)
	}
	for _, f := range suite.Fixtures {
		if err := CheckFixture(f); err != nil {
			t.Fatalf("fixture %q: %v", f.Name, err)
		}
	}
}

func TestCheckFixtureReportsDiffOnMismatch(t *testing.T) {
	f := Fixture{Name: "broken", Source: "print 1 + 2\n", Expected: "4\n"}
	err := CheckFixture(f)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	mismatch, ok := err.(*FixtureMismatch)
	if !ok {
		t.Fatalf("expected *FixtureMismatch, got %T", err)
	}
	if mismatch.Diff == "" {
		t.Fatal("expected non-empty diff")
	}
}

func TestRunFixturePropagatesParseErrors(t *testing.T) {
	f := Fixture{Name: "bad-syntax", Source: "1 = 2\n"}
	if _, err := RunFixture(f); err == nil {
		t.Fatal("expected parse error")
	}
}
