package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"mython-go/pkg/interpreter"
	"mython-go/pkg/parser"
	"mython-go/pkg/runtime"
)

// Fixture is a single golden-output test case: a Mython source program
// and the text its Print/Stringify calls are expected to produce.
type Fixture struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Expected string `yaml:"expected"`
}

// FixtureSuite is a named collection of Fixtures, the unit a single YAML
// manifest file describes — grounded on the teacher's package.yml
// being one manifest per module, repointed here at golden-output cases
// instead of build targets.
type FixtureSuite struct {
	Suite    string    `yaml:"suite"`
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadFixtureSuite reads and parses a fixture manifest file.
func LoadFixtureSuite(path string) (*FixtureSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read fixture suite %s: %w", path, err)
	}
	return ParseFixtureSuite(data)
}

// ParseFixtureSuite parses a fixture manifest already held in memory.
func ParseFixtureSuite(data []byte) (*FixtureSuite, error) {
	var suite FixtureSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("driver: parse fixture suite: %w", err)
	}
	return &suite, nil
}

// RunFixture parses and evaluates f.Source, returning the text it wrote
// to its output stream.
func RunFixture(f Fixture) (string, error) {
	program, err := parser.ParseProgram(f.Source)
	if err != nil {
		return "", fmt.Errorf("fixture %q: %w", f.Name, err)
	}
	ctx := runtime.NewBufferContext()
	ev := interpreter.New(ctx)
	if err := ev.Run(program); err != nil {
		return "", fmt.Errorf("fixture %q: %w", f.Name, err)
	}
	return ctx.String(), nil
}

// FixtureMismatch reports a fixture whose actual output didn't match
// Expected, carrying a human-readable diff rendered with diffmatchpatch
// — the same library the teacher's transitive go-git dependency pulls
// in, repurposed here for golden-test failure reporting since nothing
// else in the retrieved pack offers a diff renderer.
type FixtureMismatch struct {
	Name string
	Diff string
}

func (e *FixtureMismatch) Error() string {
	return fmt.Sprintf("fixture %q: output mismatch\n%s", e.Name, e.Diff)
}

// CheckFixture runs f and compares its output against f.Expected,
// returning a *FixtureMismatch with an inline diff on failure.
func CheckFixture(f Fixture) error {
	actual, err := RunFixture(f)
	if err != nil {
		return err
	}
	if actual == f.Expected {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(f.Expected, actual, false)
	return &FixtureMismatch{Name: f.Name, Diff: renderDiff(diffs)}
}

func renderDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("-" + d.Text)
		case diffmatchpatch.DiffInsert:
			b.WriteString("+" + d.Text)
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
