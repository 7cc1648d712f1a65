// Package adjacency holds the frozen, read-only triangulation view
// that package universe rebuilds once per sweep and that package
// simulation hands to Observables. It also provides a small
// breadth-first distance helper over that view, grounded on the
// teacher corpus's bfs walker, for observables that need geodesic
// distances (e.g. Hausdorff dimension sampling).
package adjacency
