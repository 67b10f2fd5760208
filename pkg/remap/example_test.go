package remap_test

import (
	"fmt"

	"github.com/ib-77/rangemap/pkg/remap"
)

func ExampleStage_ApplyRange() {
	stage, err := remap.NewStage("demo", remap.Entry{DestinationStart: 10, SourceStart: 4, Length: 2})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, fragment := range stage.ApplyRange(remap.Interval{Start: 2, Length: 6}) {
		fmt.Println(fragment)
	}
	// Output:
	// [2, 4)
	// [10, 12)
	// [6, 8)
}

func ExamplePipeline_LowestLocation() {
	seedToSoil, _ := remap.NewStage("seed-to-soil",
		remap.Entry{DestinationStart: 50, SourceStart: 98, Length: 2},
		remap.Entry{DestinationStart: 52, SourceStart: 50, Length: 48},
	)
	p := remap.NewPipeline(seedToSoil)

	lowest, err := p.LowestLocation([]int64{79, 14, 55, 13})
	fmt.Println(lowest, err)
	// Output: 13 <nil>
}
