package vec_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/persistent/pkg/vec"
)

func TestTakeDrop(t *testing.T) {
	Convey("Given a vector of 0..9999", t, func() {
		v := rangeVector(10000)

		Convey("Take keeps a prefix", func() {
			w := v.Take(1000)

			So(w.Len(), ShouldEqual, 1000)
			So(w.Get(0), ShouldEqual, 0)
			So(w.Get(999), ShouldEqual, 999)
			So(v.Len(), ShouldEqual, 10000)
		})

		Convey("Drop keeps a suffix", func() {
			w := v.Drop(1000)

			So(w.Len(), ShouldEqual, 9000)
			So(w.Get(0), ShouldEqual, 1000)
			So(w.Get(8999), ShouldEqual, 9999)
		})

		Convey("Bounds are clamped", func() {
			So(v.Take(-5).IsEmpty(), ShouldBeTrue)
			So(v.Take(10000).Len(), ShouldEqual, 10000)
			So(v.Take(20000).Len(), ShouldEqual, 10000)
			So(v.Drop(-5).Len(), ShouldEqual, 10000)
			So(v.Drop(10000).IsEmpty(), ShouldBeTrue)
			So(v.Drop(20000).IsEmpty(), ShouldBeTrue)
		})

		Convey("TakeRight and DropRight mirror Take and Drop", func() {
			So(v.TakeRight(10).ToSlice(), ShouldResemble, []int{9990, 9991, 9992, 9993, 9994, 9995, 9996, 9997, 9998, 9999})
			So(v.DropRight(9990).ToSlice(), ShouldResemble, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
			So(v.TakeRight(-1).IsEmpty(), ShouldBeTrue)
			So(v.DropRight(-1).Len(), ShouldEqual, 10000)
		})

		Convey("Take then drop round trips at block boundaries", func() {
			for _, k := range []int{0, 1, 31, 32, 33, 1023, 1024, 1025, 4999, 9999, 10000} {
				w := v.Take(k).Concat(v.Drop(k))

				So(w.Len(), ShouldEqual, 10000)
				So(w.Get(0), ShouldEqual, 0)
				if k > 0 && k < 10000 {
					So(w.Get(k-1), ShouldEqual, k-1)
					So(w.Get(k), ShouldEqual, k)
				}
				So(w.Get(9999), ShouldEqual, 9999)
			}
		})

		Convey("Slice combines both cuts", func() {
			w := v.Slice(100, 200)

			So(w.Len(), ShouldEqual, 100)
			So(w.Get(0), ShouldEqual, 100)
			So(w.Get(99), ShouldEqual, 199)
			So(v.Slice(200, 100).IsEmpty(), ShouldBeTrue)
		})

		Convey("SplitAt returns both halves", func() {
			l, r := v.SplitAt(5000)

			So(l.Len(), ShouldEqual, 5000)
			So(r.Len(), ShouldEqual, 5000)
			So(l.Last(), ShouldEqual, 4999)
			So(r.Head(), ShouldEqual, 5000)
		})

		Convey("Tail and Init trim one element", func() {
			So(v.Tail().Head(), ShouldEqual, 1)
			So(v.Tail().Len(), ShouldEqual, 9999)
			So(v.Init().Last(), ShouldEqual, 9998)
			So(v.Init().Len(), ShouldEqual, 9999)
		})
	})

	Convey("Given a relaxed vector built by prepends", t, func() {
		v := vec.Empty[int]()
		for i := range 100 {
			v = v.Prepend(i) // holds 99..0
		}

		Convey("Cuts through unaligned leaves stay correct", func() {
			for _, k := range []int{1, 17, 33, 64, 99} {
				l, r := v.SplitAt(k)

				So(l.Len(), ShouldEqual, k)
				So(r.Len(), ShouldEqual, 100-k)
				So(l.Last(), ShouldEqual, 100-k)
				So(r.Head(), ShouldEqual, 100-k-1)
			}
		})
	})
}
