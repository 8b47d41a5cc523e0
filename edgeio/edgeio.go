package edgeio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
)

// FromFile loads a plaintext edgelist. In weighted mode each line is
// "src dest weight"; otherwise "src dest" with weight 1. Unparseable lines
// are skipped. The returned container is directed; callers flip the flag
// for undirected datasets.
func FromFile(path string, weighted bool) (*edgelist.EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgeio: open %s: %w", path, err)
	}
	defer f.Close()

	el := edgelist.New(true)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		var src, dest int
		if weighted {
			var weight float64
			if n, _ := fmt.Sscanf(line, "%d %d %g", &src, &dest, &weight); n == 3 {
				el.InsertEdge(src, dest, weight)
			}
		} else {
			if n, _ := fmt.Sscanf(line, "%d %d", &src, &dest); n == 2 {
				el.InsertEdge(src, dest, 1)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgeio: read %s: %w", path, err)
	}
	return el, nil
}

// Save writes el's forward edges as "src dest weight" lines with weights in
// %.10E, one physical weight per line.
func Save(path string, el *edgelist.EdgeList) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgeio: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, e := range el.Edges() {
		fmt.Fprintf(w, "%d %d %.10E\n", e.Src, e.Dest, e.Weight)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("edgeio: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("edgeio: close %s: %w", path, err)
	}
	return nil
}
