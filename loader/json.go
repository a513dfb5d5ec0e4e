package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/bcapprox/core"
)

type nodeLinkDoc struct {
	Directed bool           `json:"directed"`
	Nodes    []nodeLinkNode `json:"nodes"`
	Links    []nodeLinkEdge `json:"links"`
	Edges    []nodeLinkEdge `json:"edges"`
}

type nodeLinkNode struct {
	ID any `json:"id"`
}

type nodeLinkEdge struct {
	Source any         `json:"source"`
	Target any         `json:"target"`
	Weight json.Number `json:"weight"`
}

// ReadNodeLinkJSON parses a node-link JSON document. Node IDs may be
// strings or numbers; edges are read from "links" or, failing that, "edges".
//
// Complexity: O(V + E) plus JSON decoding.
func ReadNodeLinkJSON(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc nodeLinkDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrSyntax, err)
	}

	directed := doc.Directed
	if o.ForceDirected {
		directed = o.Directed
	}
	b := newGraphBuilder(o, directed)

	for i, n := range doc.Nodes {
		id, err := convertID(n.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: json: node %d: %v", ErrSyntax, i, err)
		}
		if err := b.vertex(id); err != nil {
			return nil, fmt.Errorf("loader: node %q: %w", id, err)
		}
	}
	links := doc.Links
	if len(links) == 0 {
		links = doc.Edges
	}
	for i, e := range links {
		u, err1 := convertID(e.Source)
		v, err2 := convertID(e.Target)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: json: link %d has a bad endpoint", ErrSyntax, i)
		}
		if err := b.edge(u, v, e.Weight.String()); err != nil {
			return nil, fmt.Errorf("loader: link %s→%s: %w", u, v, err)
		}
	}

	return b.finish(o, FormatJSON), nil
}

// convertID accepts the ID shapes node-link writers emit.
func convertID(id any) (string, error) {
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", core.ErrEmptyVertexID
		}
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported ID type %T", id)
	}
}
