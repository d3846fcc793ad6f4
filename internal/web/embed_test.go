package web

import (
	"io/fs"
	"testing"
)

func TestStatic_ContainsClientEntrypoints(t *testing.T) {
	static := Static()
	for _, name := range []string{"index.html", "app.js"} {
		data, err := fs.ReadFile(static, name)
		if err != nil {
			t.Fatalf("missing embedded file %q: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("embedded file %q is empty", name)
		}
	}
}
