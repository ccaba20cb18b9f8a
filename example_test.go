package osgrid_test

import (
	"fmt"

	"github.com/tzneal/osgrid"
)

func ExampleConvertFromGeodetic() {
	grid := osgrid.ConvertFromGeodetic(osgrid.GeodeticCoordinate{Latitude: 52.65757031, Longitude: 1.71792158})
	ref, _ := grid.GridRef(osgrid.DefaultDigits)
	fmt.Println(ref)
	// Output: TG 51409 13177
}

func ExampleConvertToGeodetic() {
	geo, _ := osgrid.ConvertToGeodetic(osgrid.GridCoordinate{Easting: 651409.903, Northing: 313177.270})
	fmt.Printf("%.5f %.5f\n", geo.Latitude, geo.Longitude)
	// Output: 52.65757 1.71792
}

func ExampleGridCoordinate_Numbers() {
	grid := osgrid.GridCoordinate{Easting: 216600, Northing: 771200}
	letters, _ := grid.Letters()
	numbers, _ := grid.Numbers(6)
	fmt.Println(letters)
	fmt.Println(numbers)
	// Output:
	// NN
	// 166 712
}

func ExampleParseGridRef() {
	grid, digits, _ := osgrid.ParseGridRef("NN 166 712")
	fmt.Println(grid, digits)
	// Output: E 216600.000 N 771200.000 6
}
