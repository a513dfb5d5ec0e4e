package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bcapprox/core"
)

const (
	graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"
	weightAttrName   = "weight"
	edgeDirected     = "directed"
)

type graphMLDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Xmlns   string       `xml:"xmlns,attr,omitempty"`
	Keys    []graphMLKey `xml:"key"`
	Graph   graphMLGraph `xml:"graph"`
}

type graphMLKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type graphMLGraph struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphMLNode `xml:"node"`
	Edges       []graphMLEdge `xml:"edge"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ReadGraphML parses a GraphML document. Node <data> values are stored as
// vertex attributes named by their key's attr.name (or the key ID when it
// has none). The edge key named "weight" supplies weights.
//
// Complexity: O(V + E) plus XML decoding.
func ReadGraphML(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)

	var doc graphMLDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: graphml: %v", ErrSyntax, err)
	}

	names := make(map[string]string, len(doc.Keys))
	weightKey := ""
	for _, k := range doc.Keys {
		name := k.Name
		if name == "" {
			name = k.ID
		}
		names[k.ID] = name
		if k.Name == weightAttrName && (k.For == "edge" || k.For == "all" || k.For == "") {
			weightKey = k.ID
		}
	}

	directed := doc.Graph.EdgeDefault == edgeDirected
	if o.ForceDirected {
		directed = o.Directed
	}
	b := newGraphBuilder(o, directed)

	for _, n := range doc.Graph.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: graphml: node without id", ErrSyntax)
		}
		if err := b.vertex(n.ID); err != nil {
			return nil, fmt.Errorf("loader: node %q: %w", n.ID, err)
		}
		for _, d := range n.Data {
			if err := b.g.SetVertexAttr(n.ID, names[d.Key], d.Value); err != nil {
				return nil, fmt.Errorf("loader: node %q: %w", n.ID, err)
			}
		}
	}
	for i, e := range doc.Graph.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("%w: graphml: edge %d lacks source or target", ErrSyntax, i)
		}
		weight := ""
		for _, d := range e.Data {
			if weightKey != "" && d.Key == weightKey {
				weight = d.Value
			}
		}
		if err := b.edge(e.Source, e.Target, weight); err != nil {
			return nil, fmt.Errorf("loader: edge %s→%s: %w", e.Source, e.Target, err)
		}
	}

	return b.finish(o, FormatGraphML), nil
}

// WriteGraphML writes g as GraphML. Weighted graphs get a "weight" edge key.
// Vertex attributes are not written.
func WriteGraphML(w io.Writer, g *core.Graph) error {
	doc := graphMLDoc{Xmlns: graphMLNamespace}
	doc.Graph.EdgeDefault = "undirected"
	if g.Directed() {
		doc.Graph.EdgeDefault = edgeDirected
	}
	if g.Weighted() {
		doc.Keys = append(doc.Keys, graphMLKey{ID: "d0", For: "edge", Name: weightAttrName, Type: "long"})
	}
	for _, id := range g.Vertices() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphMLNode{ID: id})
	}
	for _, e := range g.Edges() {
		ge := graphMLEdge{Source: e.From, Target: e.To}
		if g.Weighted() {
			ge.Data = []graphMLData{{Key: "d0", Value: strconv.FormatInt(e.Weight, 10)}}
		}
		doc.Graph.Edges = append(doc.Graph.Edges, ge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: write graphml: %w", err)
	}
	_, err := io.WriteString(w, "\n")

	return err
}
