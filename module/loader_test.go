// Copyright 2026 The JXON Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package module_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"github.com/cstuartroe/jxon/module"
	"github.com/cstuartroe/jxon/parser"
	"github.com/cstuartroe/jxon/value"
)

// writeArchive unpacks a txtar fixture into a fresh temp directory and
// returns its root, one file tree per test case rather than one
// WriteFile call per file.
func writeArchive(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	a := txtar.Parse([]byte(data))
	for _, f := range a.Files {
		p := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadFileResolvesRelativeImportGraph(t *testing.T) {
	dir := writeArchive(t, `
-- leaf.jxon --
export default "leaf";
-- mid.jxon --
import leaf from "./leaf.jxon";
export default {"wrapped": leaf};
-- root.jxon --
import mid from "./mid.jxon";
mid
`)

	got, err := module.LoadFile(filepath.Join(dir, "root.jxon"), parser.JXON)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	wantObj := value.NewObject()
	wantObj.Set("wrapped", value.Str("leaf"))
	if !value.Equal(got.DefaultExport, wantObj) {
		t.Errorf("DefaultExport mismatch:\n%s", strings.Join(pretty.Diff(wantObj, got.DefaultExport), "\n"))
	}
}

func TestLoadFileReportsTransitiveCircularImport(t *testing.T) {
	dir := writeArchive(t, `
-- a.jxon --
import b from "./b.jxon"; b
-- b.jxon --
import c from "./c.jxon"; c
-- c.jxon --
import a from "./a.jxon"; a
`)

	_, err := module.LoadFile(filepath.Join(dir, "a.jxon"), parser.JXON)
	if err == nil {
		t.Fatal("expected circular import error")
	}
	if !strings.Contains(err.Error(), "Circular import") {
		t.Errorf("error = %#v, want mention of Circular import", pretty.Formatter(err))
	}
}

func TestDialectForExtension(t *testing.T) {
	cases := map[string]parser.Dialect{
		"a.jxon": parser.JXON,
		"a.jxsd": parser.JXSD,
		"a.xml":  parser.Combined,
		"a.json": parser.Combined,
		"a.txt":  parser.JXON,
	}
	for name, want := range cases {
		if got := module.DialectForExtension(name); got != want {
			t.Errorf("DialectForExtension(%q) = %v, want %v", name, got, want)
		}
	}
}
