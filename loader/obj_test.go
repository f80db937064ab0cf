package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleOBJ = `
# a single triangle, with a texture coordinate and normal present but ignored
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vt 0.0 0.0
vn 0.0 0.0 1.0
f 1/1/1 2/1/1 3/1/1
`

func TestParseOBJProducesOneTriangle(t *testing.T) {
	tmpl, err := parseOBJ(strings.NewReader(sampleOBJ))
	assert.NoError(t, err)
	assert.Len(t, tmpl.Primitives(), 1)
}

const sampleOBJWithQuad = `
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 1.0 1.0 0.0
v 0.0 1.0 0.0
f 1 2 3 4
f 1 2 3
`

func TestParseOBJSkipsNonTriangleFaces(t *testing.T) {
	tmpl, err := parseOBJ(strings.NewReader(sampleOBJWithQuad))
	assert.NoError(t, err)
	assert.Len(t, tmpl.Primitives(), 1)
}

func TestParseOBJRejectsOutOfRangeFace(t *testing.T) {
	_, err := parseOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)
}

func TestLoaderGetMissesUnloadedPath(t *testing.T) {
	l := NewLoader()
	_, ok := l.Get("nonexistent.obj")
	assert.False(t, ok)
}
