package dataset_test

import (
	"testing"

	dataset "github.com/okian/tally/internal/dataset"
	"github.com/okian/tally/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestBuildSample(t *testing.T) {
	convey.Convey("Given the demo data builder", t, func() {
		convey.Convey("When building the sample set", func() {
			records := dataset.BuildSample()

			convey.Convey("Then it should contain exactly the fixed five records", func() {
				convey.So(records, convey.ShouldResemble, []model.Record{
					{ID: 1, Name: "alpha", Value: 10.0},
					{ID: 2, Name: "beta", Value: 5.0},
					{ID: 3, Name: "gamma", Value: 0.0},
					{ID: 4, Name: "delta", Value: 2.5},
					{ID: 5, Name: "epsilon", Value: 7.5},
				})
			})
		})

		convey.Convey("When a caller mutates one build", func() {
			first := dataset.BuildSample()
			first[0].Value = -99.0
			first[0].Name = "mangled"

			convey.Convey("Then later builds are unaffected", func() {
				second := dataset.BuildSample()
				convey.So(second[0].Name, convey.ShouldEqual, "alpha")
				convey.So(second[0].Value, convey.ShouldEqual, 10.0)
			})
		})
	})
}
