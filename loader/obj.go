// Package loader imports triangle meshes from Wavefront OBJ files into
// scene.Template values, caching parsed templates by file path so many
// scene objects can share one without re-parsing or duplicating memory.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
	"github.com/Carmen-Shannon/oxy-trace/scene"
)

// loaderImpl is the implementation of the Loader interface.
type loaderImpl struct {
	mu    sync.RWMutex
	cache map[string]scene.Template
}

// Loader parses and caches Wavefront OBJ mesh templates.
type Loader interface {
	// Load parses path if it has not already been cached, and returns the
	// resulting Template. Subsequent calls with the same path return the
	// cached Template without re-reading the file.
	Load(path string) (scene.Template, error)

	// Get returns a previously loaded Template by path, or false if no
	// template has been loaded from that path yet.
	Get(path string) (scene.Template, bool)
}

var _ Loader = &loaderImpl{}

// NewLoader returns an empty Loader.
func NewLoader() Loader {
	return &loaderImpl{cache: make(map[string]scene.Template)}
}

func (l *loaderImpl) Get(path string) (scene.Template, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.cache[path]
	return t, ok
}

func (l *loaderImpl) Load(path string) (scene.Template, error) {
	l.mu.RLock()
	if t, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return t, nil
	}
	l.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	tmpl, err := parseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = tmpl
	l.mu.Unlock()
	return tmpl, nil
}

// parseOBJ reads a Wavefront OBJ stream and returns a Template built from
// its triangle faces. Vertex normals and texture coordinates are consumed
// by the line scanner but not retained: the core renderer recomputes face
// normals itself and has no texture concept. Non-triangle faces (polygons
// with more or fewer than three vertex references) are skipped, and each
// skip is logged.
func parseOBJ(r io.Reader) (scene.Template, error) {
	var vertices []geom.Point3
	var triangles []primitive.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vertices = append(vertices, v)
		case "f":
			if len(fields[1:]) != 3 {
				// Only triangle faces are supported; skip quads/n-gons.
				log.Printf("loader: line %d: skipping face with %d vertices (only triangles are supported)", lineNum, len(fields[1:]))
				continue
			}
			tri, err := parseFace(fields[1:], vertices)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			triangles = append(triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return scene.TrianglesTemplate{Triangles: triangles}, nil
}

func parseVertex(fields []string) (geom.Point3, error) {
	if len(fields) < 3 {
		return geom.Point3{}, fmt.Errorf("malformed vertex record")
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return geom.Point3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return geom.Point3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return geom.Point3{}, err
	}
	return geom.Point3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace resolves a triangle's three vertex-index references. Each
// reference may carry /vt/vn suffixes, which are discarded.
func parseFace(fields []string, vertices []geom.Point3) (primitive.Triangle, error) {
	var idx [3]int
	for i, field := range fields {
		ref := strings.SplitN(field, "/", 2)[0]
		n, err := strconv.Atoi(ref)
		if err != nil {
			return primitive.Triangle{}, fmt.Errorf("malformed face record: %w", err)
		}
		if n < 0 {
			// Negative indices count back from the end of the vertex list.
			n = len(vertices) + n + 1
		}
		if n < 1 || n > len(vertices) {
			return primitive.Triangle{}, fmt.Errorf("face references out-of-range vertex %d", n)
		}
		idx[i] = n - 1
	}
	return primitive.NewTriangle(vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]), nil
}
