package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sftools/sferd/pkg/sferd"
)

// installHint is appended to missing-binary errors.
const installHint = "install Graphviz (macOS: brew install graphviz, Debian/Ubuntu: apt-get install graphviz, or see https://graphviz.org/download/)"

// pngDPI is passed to Graphviz for raster output; vector formats scale
// without it.
const pngDPI = 300

// RenderError reports a failed Graphviz invocation for one format, carrying
// the engine's stderr for diagnosis.
type RenderError struct {
	Format string
	Stderr string
}

func (e *RenderError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("graphviz failed for format %q", e.Format)
	}
	return fmt.Sprintf("graphviz failed for format %q: %s", e.Format, e.Stderr)
}

func (e *RenderError) Unwrap() error {
	return sferd.ErrRenderFailed
}

// commandRunner executes one external command and returns its stdout and
// stderr. Tests substitute a fake; production uses execRunner.
type commandRunner interface {
	Run(name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner runs commands through os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// Graphviz renders DOT text by invoking a Graphviz layout engine binary.
type Graphviz struct {
	engine  string
	runner  commandRunner
	tempDir string
}

// NewGraphviz creates a renderer for the given layout engine ("dot",
// "neato", ...). Panics on an unsupported engine name; callers validate
// user input before construction.
func NewGraphviz(engine string) *Graphviz {
	if !sferd.IsSupportedEngine(engine) {
		panic(fmt.Sprintf("render: unsupported engine %q", engine))
	}
	return &Graphviz{
		engine:  engine,
		runner:  execRunner{},
		tempDir: os.TempDir(),
	}
}

// newGraphvizWithRunner is the test constructor.
func newGraphvizWithRunner(engine string, runner commandRunner, tempDir string) *Graphviz {
	return &Graphviz{engine: engine, runner: runner, tempDir: tempDir}
}

// Render lays out the DOT text and returns the image bytes for the requested
// format. The DOT text is staged in a uniquely named temp file so concurrent
// runs never collide; the file is removed before returning.
func (g *Graphviz) Render(dot string, format string) ([]byte, error) {
	if !sferd.IsSupportedFormat(format) {
		return nil, fmt.Errorf("unsupported output format %q: %w", format, sferd.ErrRenderFailed)
	}

	tempPath := filepath.Join(g.tempDir, fmt.Sprintf("sferd-%s.dot", uuid.NewString()))
	if err := os.WriteFile(tempPath, []byte(dot), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage DOT file: %w", err)
	}
	defer os.Remove(tempPath)

	args := []string{"-T" + format}
	if format == "png" {
		args = append(args, fmt.Sprintf("-Gdpi=%d", pngDPI))
	}
	args = append(args, tempPath)

	out, stderr, err := g.runner.Run(g.engine, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%q not found: %s: %w", g.engine, installHint, sferd.ErrRendererNotFound)
		}
		return nil, &RenderError{Format: format, Stderr: string(bytes.TrimSpace(stderr))}
	}
	return out, nil
}

var _ sferd.Renderer = (*Graphviz)(nil)
