// Package labeler declares the external canonical-labeling collaborator
// the search engine consumes (spec §4.1): canonical labeling, the orbit
// partition, a generating set for Aut(G), and the stabilizer-index
// chain whose product is |Aut(G)|. The engine only relies on these four
// operations being deterministic for a fixed graph and color partition;
// it never assumes a particular algorithm.
//
// Package labeler/refinement ships one concrete, pure-Go implementation
// built on individualization-refinement, the same family of algorithm
// McKay's nauty implements; see refinement/doc.go for the grounding.
package labeler
