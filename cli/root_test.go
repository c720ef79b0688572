package cli_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/cli"
)

const versionLine = "# Version = 1.0.1, Revision date = 30-Oct-2019\n"

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Run(args, cli.IOStreams{Out: &out, ErrOut: &errOut})

	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestScalarResults(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.txt", "matrix 2 2\n4 7\n2 6\nend\n")
	row := writeFile(t, dir, "row.txt", "matrix 1 2\n3 4\nend\n")

	res := run(t, "-d", square)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Equal(t, "The determinant of the matrix is 10.\n", res.stdout)

	res = run(t, "-f", row)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Equal(t, "The frobenius norm of the matrix is 5.\n", res.stdout)
}

func TestTransposeToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "wide.txt", "matrix 2 3\n1 2 3\n4 5 6\nend\n")

	res := run(t, "-t", in)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)

	want := "# matcalc -t " + in + "\n" + versionLine +
		"matrix 3 2\n1\t4\n2\t5\n3\t6\nend\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, res.stderr)
}

func TestInverseToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "square.txt", "matrix 2 2\n4 7\n2 6\nend\n")
	out := filepath.Join(dir, "inverse.txt")

	res := run(t, "-i", in, out)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Empty(t, res.stdout)
	require.Empty(t, res.stderr) // not a terminal: no notice

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "# matcalc -i " + in + " " + out + "\n" + versionLine +
		"matrix 2 2\n0.6\t-0.7\n-0.2\t0.4\nend\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestSingularInverseWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "singular.txt", "matrix 2 2\n1 2\n2 4\nend\n")
	out := filepath.Join(dir, "never.txt")

	res := run(t, "-i", in, out)
	require.Equal(t, calc.ExitInvalidMatrix, res.code)
	require.Contains(t, res.stderr, "determinant is 0")

	_, err := os.Stat(out)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestProductSwapNotice(t *testing.T) {
	dir := t.TempDir()
	column := writeFile(t, dir, "column.txt", "matrix 3 1\n1\n0\n-1\nend\n")
	wide := writeFile(t, dir, "wide.txt", "matrix 2 3\n1 2 3\n4 5 6\nend\n")

	res := run(t, "-m", column, wide)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Contains(t, res.stderr, "swapped")
	require.Contains(t, res.stdout, "matrix 2 1\n-2\n-2\nend\n")

	res = run(t, "-m", wide, column)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Empty(t, res.stderr)
}

func TestArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "square.txt", "matrix 2 2\n4 7\n2 6\nend\n")

	for _, tc := range []struct {
		name string
		args []string
	}{
		{"nothing", nil},
		{"no operation", []string{in}},
		{"two operations", []string{"-f", "-d", in}},
		{"unknown flag", []string{"-x", in}},
		{"missing input", []string{"-t"}},
		{"product with one input", []string{"-m", in}},
		{"scalar with output file", []string{"-d", in, "out.txt"}},
		{"too many operands", []string{"-t", in, "out.txt", "extra"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, tc.args...)
			require.Equal(t, calc.ExitArguments, res.code)
			require.Contains(t, res.stderr, "'-m': Matrix Product : matcalc -m input_file_1 input_file_2 (output_file)")
			require.Empty(t, res.stdout)
		})
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.txt", "matrix 2 2\n1 2\nend\n")
	square := writeFile(t, dir, "square.txt", "matrix 2 2\n4 7\n2 6\nend\n")

	res := run(t, "-t", filepath.Join(dir, "missing.txt"))
	require.Equal(t, calc.ExitFileOpen, res.code)

	res = run(t, "-t", broken)
	require.Equal(t, calc.ExitInvalidFile, res.code)
	require.Contains(t, res.stderr, "is an invalid matrix file")
	require.Contains(t, res.stderr, "line 3")

	res = run(t, "-a", square, filepath.Join(dir, "no", "dir", "out.txt"))
	require.Equal(t, calc.ExitFileOpen, res.code)

	res = run(t, "-d", writeFile(t, dir, "wide.txt", "matrix 1 2\n1 2\nend\n"))
	require.Equal(t, calc.ExitInvalidMatrix, res.code)
	require.Contains(t, res.stderr, "not square")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	ones := writeFile(t, dir, "ones.txt", "matrix 2 2\n1 1\n1 1\nend\n")
	third := writeFile(t, dir, "third.txt", "matrix 1 1\n3\nend\n")

	cfg := writeFile(t, dir, "cfg.yaml", "precision: 3\nscalar_precision: 3\n")
	res := run(t, "-f", ones, "--config", cfg)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Equal(t, "The frobenius norm of the matrix is 2.\n", res.stdout)

	res = run(t, "--config", cfg, "-i", third)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Contains(t, res.stdout, "matrix 1 1\n0.333\nend\n")

	limit := writeFile(t, dir, "limit.yaml", "max_rows_cols: 1\n")
	res = run(t, "--config", limit, "-t", ones)
	require.Equal(t, calc.ExitInvalidFile, res.code)

	empty := writeFile(t, dir, "empty.yaml", "")
	res = run(t, "--config", empty, "-d", ones)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Equal(t, "The determinant of the matrix is 0.\n", res.stdout)

	for _, bad := range []string{"colour: red\n", "precision: 40\n", "max_rows_cols: 5000\n", "precision: [1\n"} {
		path := writeFile(t, dir, "bad.yaml", bad)
		res = run(t, "--config", path, "-d", ones)
		require.Equal(t, calc.ExitArguments, res.code, bad)
	}

	res = run(t, "--config", filepath.Join(dir, "none.yaml"), "-d", ones)
	require.Equal(t, calc.ExitArguments, res.code)
}

func TestVersionAndVerbosityFlags(t *testing.T) {
	res := run(t, "--version")
	require.Equal(t, calc.ExitOK, res.code)
	require.Contains(t, res.stdout, "1.0.1 (30-Oct-2019)")

	dir := t.TempDir()
	in := writeFile(t, dir, "one.txt", "matrix 1 1\n5\nend\n")
	res = run(t, "-v", "0", "-d", in)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Equal(t, "The determinant of the matrix is 5.\n", res.stdout)
}

func TestHeaderEchoesInvocation(t *testing.T) {
	dir := t.TempDir()
	column := writeFile(t, dir, "column.txt", "matrix 3 1\n1\n0\n-1\nend\n")
	wide := writeFile(t, dir, "wide.txt", "matrix 2 3\n1 2 3\n4 5 6\nend\n")
	cfg := writeFile(t, dir, "cfg.yaml", "")

	res := run(t, "-v", "0", "--config", cfg, "-m", column, wide)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)

	want := "# matcalc -v 0 --config " + cfg + " -m " + column + " " + wide + "\n" + versionLine +
		"matrix 2 1\n-2\n-2\nend\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}

	out := filepath.Join(dir, "out.txt")
	res = run(t, wide, out, "-t")
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# matcalc "+wide+" "+out+" -t\n"))
}

const sampleMatrix = "testdata/matrix5.txt"

func TestSampleMatrix(t *testing.T) {
	res := run(t, "-d", sampleMatrix)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Regexp(t, `^The determinant of the matrix is -6815\.55\d*\.\n$`, res.stdout)

	res = run(t, "-t", sampleMatrix)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	want := "# matcalc -t " + sampleMatrix + "\n" + versionLine +
		"matrix 5 5\n" +
		"2.83370440492\t7.28480886542\t3.45785923929\t7.32063978786\t5.91152850814\n" +
		"8.88917318028\t1.52160318639\t0.74100860429\t2.38237182721\t5.86496787885\n" +
		"9.4905927449\t3.90610974464\t2.18731795539\t6.42597589941\t3.83524731446\n" +
		"6.78923309631\t5.39168804669\t4.01333075669\t0.218148487722\t8.14470262646\n" +
		"5.70598280323\t9.67236023847\t0.839364077355\t7.28209677491\t3.26078773162\n" +
		"end\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}

	res = run(t, "-i", sampleMatrix)
	require.Equal(t, calc.ExitOK, res.code, res.stderr)
	require.Contains(t, res.stdout, "matrix 5 5\n-0.12521")
}
