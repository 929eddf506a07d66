// Package literal provides the declarative graph-literal syntax spec §6
// describes as an external collaborator — "(K, N) => [(target_key, E), …]"
// for directed graphs, "(K, N) : [(target_key, E), …]" for undirected — plus
// a set of canonical-topology constructors generalized from the teacher's
// builder package.
//
// Go has no macro facility to give that literal syntax its own operator, so
// Directed and Undirected take a slice of NodeLiteral values instead: the
// same "(key, value) => [(target, weight), …]" shape expressed as a Go
// composite literal rather than a macro invocation. Both are pure syntactic
// sugar over core's Insert-then-Connect, exactly as spec §6 requires — they
// impose no additional semantic contract beyond what connecting the nodes
// by hand would.
//
// The topology constructors (Complete, Cycle, Star, Wheel, Path, Grid,
// Bipartite, RandomSparse, RandomRegular) are adapted from the teacher's
// impl_*.go family: each reduces to a deterministic list of index pairs,
// realized into nodes via BuildUndirected or BuildDirected. Vertex IDs are
// caller-supplied through an IDFunc — core's key type is a type parameter,
// so unlike the teacher's decimalID default there is no generic default
// that works for every K.
package literal
