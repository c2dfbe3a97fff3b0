package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chromalign/internal/appcore"
)

func inputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	g := filepath.Join(dir, "genome.fasta")
	c := filepath.Join(dir, "chromosomes.csv")
	if err := os.WriteFile(g, []byte(">g\nAACGTTTCGA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c, []byte("id,start,end\nc1,0,5\nc2,7,10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// keep a stray config in the working directory out of the way
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return g, c
}

func run(argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestCompareFlags(t *testing.T) {
	g, c := inputs(t)
	code, out, stderr := run("compare", "-g", g, "-c", c, "-q")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(out, "c1 vs c2 similarity: 66.67%") || !strings.Contains(out, "Best Match Pair: c1 and c2") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestComparePositionalsTSV(t *testing.T) {
	g, c := inputs(t)
	code, out, stderr := run("compare", g, c, "-o", "tsv", "--no-header", "-q", "-t", "1")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if strings.HasPrefix(out, "id1") {
		t.Fatalf("header not suppressed:\n%s", out)
	}
	if !strings.HasPrefix(out, "c1\tc2\t66.67\t2\t2\n") {
		t.Fatalf("unexpected tsv:\n%s", out)
	}
}

func TestCompareNoTrace(t *testing.T) {
	g, c := inputs(t)
	_, out, _ := run("compare", "-g", g, "-c", c, "--no-trace", "-q")
	if strings.Contains(out, "RRW") {
		t.Fatalf("trace printed with --no-trace:\n%s", out)
	}
}

func TestCompareMissingInputs(t *testing.T) {
	inputs(t)
	code, _, stderr := run("compare", "-q")
	if code != appcore.ExitUsage || !strings.Contains(stderr, "genome") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	code, _, _ = run("compare", "only-one.fa")
	if code != appcore.ExitUsage {
		t.Fatalf("single positional: exit %d", code)
	}
}

func TestCompareBadOutput(t *testing.T) {
	g, c := inputs(t)
	code, _, stderr := run("compare", "-g", g, "-c", c, "-o", "xml")
	if code != appcore.ExitUsage || !strings.Contains(stderr, "--output") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestCompareConfigFile(t *testing.T) {
	g, c := inputs(t)
	cfg := filepath.Join(t.TempDir(), "run.yaml")
	body := "genome: " + g + "\ncoords: " + c + "\noutput: jsonl\nquiet: true\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := run("compare", "--config", cfg)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(out, `"type":"best"`) {
		t.Fatalf("config output format not applied:\n%s", out)
	}
}

func TestEnvOverride(t *testing.T) {
	g, c := inputs(t)
	t.Setenv("CHROMALIGN_OUTPUT", "tsv")
	_, out, _ := run("compare", "-g", g, "-c", c, "-q")
	if !strings.HasPrefix(out, "id1\tid2") {
		t.Fatalf("env override not applied:\n%s", out)
	}
}

func TestExtract(t *testing.T) {
	g, c := inputs(t)
	code, out, stderr := run("extract", g, c, "-q")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != ">c1 len=5\nAACGT\n>c2 len=3\nCGA\n" {
		t.Fatalf("got %q", out)
	}
}

func TestAlign(t *testing.T) {
	inputs(t)
	code, out, _ := run("align", "CG", "AACGT", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "seq1 vs seq2 similarity: 40.00%") || !strings.Contains(out, "XXRRX") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run("version")
	if code != 0 || !strings.HasPrefix(out, "chromalign version ") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := run("frobnicate")
	if code != appcore.ExitUsage || !strings.Contains(stderr, "unknown command") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}
