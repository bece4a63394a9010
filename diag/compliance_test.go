// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package diag_test

import (
	"archive/zip"
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jview/diag"
	"github.com/google/go-cmp/cmp"
)

var (
	doCompliance = flag.Bool("compliance-test", false,
		"Run the JSONTestSuite compliance test")
	complianceURL = flag.String("compliance-test-repo", "https://github.com/nst/JSONTestSuite",
		"Compliance test repository URL")
	complianceZip = flag.String("compliance-test-zip", "hard-test-suite.zip",
		"Local cache of the compliance test archive")
)

// openArchive opens the cached test archive, fetching it first if needed.
func openArchive(t *testing.T) *zip.Reader {
	t.Helper()

	if fi, err := os.Stat(*complianceZip); err == nil {
		zf, err := os.Open(*complianceZip)
		if err != nil {
			t.Fatalf("Open archive: %v", err)
		}
		t.Cleanup(func() { zf.Close() })
		zr, err := zip.NewReader(zf, fi.Size())
		if err != nil {
			t.Fatalf("Open reader: %v", err)
		}
		return zr
	} else if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Stat archive: %v", err)
	}

	url := *complianceURL + "/archive/refs/heads/master.zip"
	t.Logf("Fetching %q ...", url)
	rsp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		t.Fatalf("Fetch failed: %s", rsp.Status)
	}

	zf, err := os.Create(*complianceZip)
	if err != nil {
		t.Fatalf("Create output: %v", err)
	}
	t.Cleanup(func() { zf.Close() })
	size, err := io.Copy(zf, rsp.Body)
	if err != nil {
		t.Fatalf("Write output: %v", err)
	}
	zr, err := zip.NewReader(zf, size)
	if err != nil {
		t.Fatalf("Open reader: %v", err)
	}
	return zr
}

func readFile(t *testing.T, zf *zip.File) string {
	t.Helper()
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", zf.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Read %q: %v", zf.Name, err)
	}
	return string(data)
}

// TestCompliance checks the diagnostics of the cases from "Parsing JSON is a
// Minefield", https://seriot.ch/projects/parsing_json.html. Accepted inputs
// must survive a format round trip. Rejected inputs must report an error
// index within the text. Indeterminate (i_*) cases are not checked.
func TestCompliance(t *testing.T) {
	if !*doCompliance {
		t.Skip("Skipping compliance test because --compliance-test is false")
	}
	var numYes, numNo, numNoIndex int
	for _, f := range openArchive(t).File {
		_, tail, ok := strings.Cut(f.Name, "/test_parsing/")
		if !ok || filepath.Ext(tail) != ".json" {
			continue
		}
		name := strings.TrimSuffix(tail, ".json")
		tag, _, _ := strings.Cut(name, "_")
		switch tag {
		case "y":
			numYes++
			t.Run(name, func(t *testing.T) {
				text := readFile(t, f)
				res := diag.Parse(text)
				if !res.OK() {
					t.Fatalf("Parse: unexpected %v: %s", res.Kind, res.Message)
				}
				again := diag.Parse(diag.Format(res.Value))
				if !again.OK() {
					t.Fatalf("Reparse formatted: %s", again.Message)
				}
				if diff := cmp.Diff(diag.Minify(res.Value), diag.Minify(again.Value)); diff != "" {
					t.Errorf("Format round trip (-want, +got):\n%s", diff)
				}
			})
		case "n":
			numNo++
			t.Run(name, func(t *testing.T) {
				text := readFile(t, f)
				res := diag.Parse(text)
				switch {
				case res.OK():
					t.Fatalf("Parse: got %v, want error", res.Value)
				case res.Kind == diag.Empty:
					return
				case res.Index == diag.NoIndex:
					numNoIndex++
					t.Logf("- no index: %s", res.Message)
				case res.Index < 0 || res.Index > len(text):
					t.Errorf("Index %d out of range [0, %d]: %s", res.Index, len(text), res.Message)
				}
			})
		}
	}
	t.Logf("Checked %d accepted and %d rejected inputs (%d without an index)", numYes, numNo, numNoIndex)
}
