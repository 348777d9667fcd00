package checksum

import (
	"testing"
	"testing/fstest"
)

func TestSum(t *testing.T) {
	// sha256("")
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != empty {
		t.Errorf("Sum(nil) = %s", got)
	}
}

func TestTree(t *testing.T) {
	a := fstest.MapFS{
		"categories.yml": {Data: []byte("enabled: true\n")},
		"Dev/a.md":       {Data: []byte("a")},
	}
	b := fstest.MapFS{
		"Dev/a.md":       {Data: []byte("a")},
		"categories.yml": {Data: []byte("enabled: true\n")},
	}
	c := fstest.MapFS{
		"categories.yml": {Data: []byte("enabled: true\n")},
		"Ops/a.md":       {Data: []byte("a")},
	}

	ha, err := Tree(a)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	hb, _ := Tree(b)
	hc, _ := Tree(c)
	if ha != hb {
		t.Error("identical trees should share a digest")
	}
	if ha == hc {
		t.Error("moving a file should change the digest")
	}
}
