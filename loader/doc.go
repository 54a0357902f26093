/*
Package loader turns source files into raw route-segment records and a set of
step-free stations.

Two source layouts are supported:

  - CSV: a lines file with a header row and columns line,from,to,minutes, and a
    step-free file with a header row and one station name per line.
  - GTFS static zip: routes.txt, trips.txt, stop_times.txt and stops.txt. The
    first trip of each route provides the segments; wheelchair_boarding=1 marks
    a stop step-free.

Sources are local paths or http(s) URLs. Every failure is wrapped with ErrLoad:
the caller is expected to abort rather than run on a partial network.

	l := loader.New(loader.WithLogger(logger))
	ds, err := l.LoadCSV(ctx, "data/WMRlines.csv", "data/WMRstationsWithStepFreeAccess.csv")
	if err != nil {
	    return err
	}
	net := network.Build(ds.Records, ds.StepFree)
*/
package loader
