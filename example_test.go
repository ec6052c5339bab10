package tzoffset_test

import (
	"fmt"

	"github.com/tzlist/tzoffset"
)

func ExampleParse() {
	tz, err := tzoffset.Parse("US/Eastern")
	if err != nil {
		panic(err)
	}
	fmt.Println(tz.Name())
	fmt.Println(tz.OffsetAtTimestamp(1704067200))
	fmt.Println(tz.Offset(1719835200))
	// Output:
	// America/New_York
	// -300
	// -04:00
}

func ExampleOffsetAtMillis() {
	off, err := tzoffset.OffsetAtMillis("Asia/Kolkata", 1704067200000)
	fmt.Println(off, err)

	_, err = tzoffset.OffsetAtMillis("Not/AZone", 0)
	fmt.Println(err)
	// Output:
	// 330 <nil>
	// invalid timezone name "Not/AZone"
}

func ExampleEngine_Route() {
	e := tzoffset.NewEngine()
	ny := tzoffset.MustParse("America/New_York")
	fmt.Println(e.Route(ny, 1151755200)) // 2006-07-01
	fmt.Println(e.Route(ny, 1704067200)) // 2024-01-01
	// Output:
	// historical
	// compact
}
