/*
Package network holds the in-memory route graph and the traversals that answer
structural questions about it.

The graph is built once from flat route-segment records and is read-only
afterwards. Segments live in a flat arena; predecessor and successor links are
indices into that arena and never cross route boundaries.

# Building

	records := []network.Record{
	    {Route: "X", Origin: "A", Destination: "B", Duration: 10},
	    {Route: "X", Origin: "B", Destination: "C", Duration: 5},
	}
	net := network.Build(records, network.NewStationSet("A"))

# Traversal state

No traversal writes to the segments. Every call owns a fresh visit set and
returns elapsed minutes alongside its results (Terminal, Step), so nothing
leaks from one query into the next and concurrent readers need no locking.

# Tolerated data problems

Disconnected chains, routes with several roots or leaves, cyclic routes and
broken accessibility chains never produce errors. Traversals return fewer or no
results; the builder logs what it saw.
*/
package network
