package opt_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/persistent/pkg/opt"
)

func TestOption(t *testing.T) {
	Convey("Given some optional values", t, func() {
		some := Some(123)
		none := None[int]()

		So(some.IsSome(), ShouldBeTrue)
		So(some.IsNone(), ShouldBeFalse)
		So(none.IsSome(), ShouldBeFalse)
		So(none.IsNone(), ShouldBeTrue)

		So(some.Unwrap(), ShouldEqual, 123)
		So(some.UnwrapOr(456), ShouldEqual, 123)
		So(none.UnwrapOr(456), ShouldEqual, 456)

		So(some.String(), ShouldEqual, "Some(123)")
		So(none.String(), ShouldEqual, "None")

		So(func() { none.Unwrap() }, ShouldPanic)
		So(func() { none.Expect("boom") }, ShouldPanicWith, "boom")
	})
}
