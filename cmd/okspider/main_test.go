package main

import (
	"bytes"
	"io"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const document = `<chart steps="3">
	<row title="Speed"><value>3</value></row>
	<row title="Power"><value>2</value></row>
	<row title="Range"><value>5</value></row>
	<row title="Comfort"><value>4</value></row>
</chart>`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "okspider dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestRenderSVG(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "chart.xml")
	if err := os.WriteFile(docPath, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "chart.svg")

	_, _, err := execute(t, "render", "--format", "svg", "--out", outPath, "--width", "300", "--height", "300", docPath)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("<svg")) || !bytes.Contains(b, []byte("Comfort")) {
		t.Errorf("unexpected SVG output %s", b)
	}
}

func TestRenderPNGToStdout(t *testing.T) {
	out, _, err := execute(t, "render", "-f", "png", "-o", "", "--width", "200", "--height", "100")
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("unexpected image size %v", b)
	}
}

func TestRenderPDF(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "chart.pdf")
	_, _, err := execute(t, "render", "-f", "pdf", "-o", outPath, "--width", "300", "--height", "300")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Error(err)
	}

	if _, _, err := execute(t, "render", "-f", "pdf", "-o", ""); err == nil {
		t.Error("expected error for PDF without output file")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, _, err := execute(t, "render", "-f", "bmp", "-o", ""); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, _, err := execute(t, "render", "-f", "svg", "-o", "", filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected error for missing document")
	}
	if _, _, err := execute(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
	// reset for the following tests
	rootCmd.PersistentFlags().Set("config", "")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := os.ReadFile(path); string(b) != "<svg/>" {
		t.Errorf("unexpected content %q", b)
	}

	// the file is already closed when writeFile closes it
	err = writeFile(path, func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	if err == nil {
		t.Error("expected close error")
	}

	if err := writeFile(filepath.Join(t.TempDir(), "missing", "chart.svg"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
