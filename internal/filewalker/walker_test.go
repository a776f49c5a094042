package filewalker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestWalkDiscoversSupportedFiles(t *testing.T) {
	root := buildTree(t, map[string]string{
		"browser/browser.ftl":          "welcome = Benvenuto\n",
		"toolkit/global.dtd":           `<!ENTITY a "b">`,
		"dom/chrome/dom.properties":    "key=valore\n",
		"browser/installer/custom.ini": "[Strings]\nKey=Valore\n",
		"browser/defines.inc":          "#define KEY valore\n",
		"README.md":                    "not localization\n",
		"browser/region.properties":    "ignored=yes\n",
		"extensions/ext.ftl":           "ignored = yes\n",
		"mail/mail.ftl":                "ignored = yes\n",
	})

	entries, err := NewWalker().Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.RelPath)
	}
	want := []string{
		"browser/browser.ftl",
		"browser/defines.inc",
		"browser/installer/custom.ini",
		"dom/chrome/dom.properties",
		"toolkit/global.dtd",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discovered files mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkDispatchesParsers(t *testing.T) {
	root := buildTree(t, map[string]string{
		"browser/browser.ftl": "welcome = Benvenuto\n",
	})

	entries, err := NewWalker().Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	w := NewWalker()
	result, err := w.ParseFile(entries[0])
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(result.Entries) != 1 || result.Entries[0].ID != "browser/browser.ftl:welcome" {
		t.Errorf("unexpected parse result: %+v", result.Entries)
	}
}

func TestWalkFollowsSymlinkedDirectories(t *testing.T) {
	root := buildTree(t, map[string]string{
		"browser/browser.ftl": "welcome = Benvenuto\n",
	})

	target := buildTree(t, map[string]string{
		"shared.ftl": "shared = Condiviso\n",
	})
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Fatal(err)
	}
	// A link back to the root must not loop the walk.
	if err := os.Symlink(root, filepath.Join(root, "loop")); err != nil {
		t.Fatal(err)
	}

	entries, err := NewWalker().Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.RelPath)
	}
	want := []string{
		"browser/browser.ftl",
		"linked/shared.ftl",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discovered files mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkRejectsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.ftl")
	if err := os.WriteFile(path, []byte("a = b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWalker().Walk(path); err == nil {
		t.Error("expected error when root is not a directory")
	}
}
