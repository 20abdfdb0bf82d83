package citysearch_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/citysearch"
	"github.com/hupe1980/citysearch/blobstore"
	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/model"
	"github.com/hupe1980/citysearch/pointstore"
	"github.com/hupe1980/citysearch/searcher"
)

// Example_open demonstrates loading a data source and running a search.
func Example_open() {
	store := blobstore.NewMemoryStore()
	store.Put("data.txt", []byte("Jerusalem\n35.21-31.77\nTel Aviv\n34.78-32.08\nEilat\n34.95-29.55\n"))

	ctx := context.Background()
	atlas, err := citysearch.Open(ctx, "data.txt", citysearch.WithBlobStore(store))
	if err != nil {
		log.Fatal(err)
	}

	res, err := atlas.Search(ctx, "Jerusalem", 1, distance.MetricL2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Matches)
	fmt.Println(res.North)
	// Output:
	// [Jerusalem Tel Aviv]
	// [Tel Aviv]
}

// Example_metrics shows how the metric choice changes the result.
func Example_metrics() {
	atlas := citysearch.New(pointstore.FromCities(
		model.City{Name: "origin", Point: model.Pt(0, 0)},
		model.City{Name: "corner", Point: model.Pt(0.8, 0.8)},
	))

	for _, m := range distance.Metrics {
		res, _ := atlas.Search(context.Background(), "origin", 1, m)
		fmt.Printf("%s: %v\n", m, res.Matches)
	}
	// Output:
	// L2: [origin]
	// Linf: [corner origin]
	// L1: [origin]
}

// Example_searchPoint demonstrates a query around a point that is not a city.
func Example_searchPoint() {
	atlas := citysearch.New(pointstore.FromCities(
		model.City{Name: "Haifa", Point: model.Pt(34.99, 32.79)},
		model.City{Name: "Akko", Point: model.Pt(35.08, 32.93)},
		model.City{Name: "Eilat", Point: model.Pt(34.95, 29.55)},
	))

	res, err := atlas.SearchPoint(context.Background(), searcher.Query{
		Center: model.Pt(35.0, 32.85),
		Radius: 0.25,
		Metric: distance.MetricL1,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Matches)
	// Output: [Akko Haifa]
}

// Example_errors demonstrates the error values returned for bad queries.
func Example_errors() {
	atlas := citysearch.New(pointstore.FromCities(model.City{Name: "A", Point: model.Pt(0, 0)}))

	_, err := atlas.Lookup("B")
	fmt.Println(err)

	_, err = citysearch.ParseMetric("5")
	fmt.Println(err)

	_, err = citysearch.ParseRadius("far")
	fmt.Println(err)
	// Output:
	// city not found: "B"
	// invalid selection: "5" is not one of 0 (L2), 1 (Linf), 2 (L1)
	// invalid input: radius "far" is not a number
}
