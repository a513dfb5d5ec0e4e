// Package loader reads graphs from files into frozen core.Graph values.
//
// Supported formats, chosen by extension in Load:
//
//   - Edge list (.txt, .edges, .el, .tsv): one "u v [weight]" per line,
//     whitespace separated; lines starting with '#' or '%' are comments.
//   - Matrix Market (.mtx): coordinate format. The banner and '%' comments
//     are skipped; when a banner is present the first data line is the
//     "rows cols entries" size line. Entries are "i j [value]".
//   - GraphML (.graphml, .xml): nodes, edges, edgedefault and <data>
//     values. Node data becomes vertex attributes keyed by attr.name; the
//     edge key named "weight" supplies edge weights.
//   - Node-link JSON (.json): {"directed": bool, "nodes": [{"id": ...}],
//     "links": [{"source": ..., "target": ..., "weight": ...}]}.
//
// Self-loops and repeated edges are skipped and counted; they are not
// errors. Weights are read as decimals and rounded to the nearest integer;
// negative weights and weights that round to zero (0, 0.3) fail with
// ErrBadWeight. Without WithWeighted every weight
// column is ignored.
//
// WriteEdgeList and WriteGraphML serialize a graph back out, which the
// generate command uses.
package loader
