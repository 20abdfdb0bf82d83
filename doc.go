// Package citysearch answers "which cities are near this one" over a small
// list of named 2-D points.
//
// A data source holds repeating two-line records:
//
//	Jerusalem
//	31.77-35.21
//
// Open loads the records into an immutable registry with sorted x and y
// coordinate indexes. Radius queries prune with the per-axis bounding box
// and then refine with the exact metric.
//
// # Quick Start
//
//	ctx := context.Background()
//	atlas, _ := citysearch.Open(ctx, "data.txt")
//	res, _ := atlas.Search(ctx, "Jerusalem", 50, distance.MetricL2)
//	fmt.Println(res.Matches, len(res.North))
//
// # Remote Sources
//
// Any blobstore.BlobStore can serve the data file:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("cities/"))
//	atlas, _ := citysearch.Open(ctx, "data.txt.zst", citysearch.WithBlobStore(store))
//
// Names ending in .gz, .zst or .lz4 are decompressed transparently.
//
// # Metrics
//
//   - distance.MetricL2: Euclidean distance
//   - distance.MetricLinf: Chebyshev distance
//   - distance.MetricL1: Manhattan distance
package citysearch
