package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/draftml/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

var goldenFlags = []string{"--hashtags", "--header-ids"}

// assertGolden compares output to a golden file and reports a unified diff.
func assertGolden(t *testing.T, golden string, output string) {
	t.Helper()
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	if string(want) == output {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(output),
		FromFile: golden,
		ToFile:   "output",
		Context:  2,
	})
	t.Errorf("output differs from %s:\n%s", golden, diff)
}

func TestGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	args := append(goldenFlags, filepath.Join("testdata", "release.json"))
	code := run(args, nil, &stdout, &stderr)
	require.Equal(t, core.NOERROR, code, stderr.String())
	assertGolden(t, filepath.Join("testdata", "release.html"), stdout.String())
}

func TestStdinAndDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.cli")
	defer teardown()
	//
	in, err := os.ReadFile(filepath.Join("testdata", "release.json"))
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	code := run(append(goldenFlags, "--digest"), bytes.NewReader(in), &stdout, &stderr)
	require.Equal(t, core.NOERROR, code, stderr.String())
	assertGolden(t, filepath.Join("testdata", "release.html"), stdout.String())
	sum := blake3.Sum256(stdout.Bytes())
	assert.Equal(t, "blake3:"+hex.EncodeToString(sum[:])+"\n", stderr.String())
}

func TestXZInputAndOutputFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.cli")
	defer teardown()
	//
	in, err := os.ReadFile(filepath.Join("testdata", "release.json"))
	require.NoError(t, err)
	dir := t.TempDir()
	compressed := filepath.Join(dir, "release.json.xz")
	f, err := os.Create(compressed)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write(in)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	//
	output := filepath.Join(dir, "release.html")
	var stdout, stderr bytes.Buffer
	args := append(goldenFlags, "--output", output, compressed)
	code := run(args, nil, &stdout, &stderr)
	require.Equal(t, core.NOERROR, code, stderr.String())
	assert.Empty(t, stdout.String())
	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assertGolden(t, filepath.Join("testdata", "release.html"), string(out))
}

func TestExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join("testdata", "no-such-file.json")}, nil, &stdout, &stderr)
	assert.Equal(t, core.EMISSING, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "[122] no such file"), stderr.String())
	//
	stderr.Reset()
	code = run(nil, strings.NewReader(`{"blocks": [`), &stdout, &stderr)
	assert.Equal(t, core.EINVALID, code)
	assert.Contains(t, stderr.String(), "cannot decode document")
	//
	stderr.Reset()
	code = run([]string{"--trace", "verbose"}, strings.NewReader(`{}`), &stdout, &stderr)
	assert.Equal(t, core.EINVALID, code, "unknown trace level must be rejected")
	//
	stdout.Reset()
	code = run([]string{"--version"}, nil, &stdout, &stderr)
	assert.Equal(t, core.NOERROR, code)
	assert.Contains(t, stdout.String(), version)
}

func TestEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(`{"blocks": [], "entityMap": {}}`), &stdout, &stderr)
	assert.Equal(t, core.NOERROR, code)
	assert.Empty(t, stdout.String())
}
