package vec_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/persistent/pkg/vec"
)

func rangeVectorFrom(lo, hi int) *vec.Vector[int] {
	b := vec.NewBuilder[int]()
	for i := lo; i < hi; i++ {
		b.Add(i)
	}

	return b.Result()
}

func TestConcat(t *testing.T) {
	Convey("Given two vectors", t, func() {
		Convey("Empty operands short-circuit", func() {
			v := rangeVector(100)

			So(v.Concat(vec.Empty[int]()), ShouldEqual, v)
			So(vec.Empty[int]().Concat(v), ShouldEqual, v)
		})

		Convey("A short right operand is appended in bulk", func() {
			v := rangeVector(1000).Concat(rangeVectorFrom(1000, 1020))

			So(v.Len(), ShouldEqual, 1020)
			So(v.Get(999), ShouldEqual, 999)
			So(v.Get(1000), ShouldEqual, 1000)
			So(v.Get(1019), ShouldEqual, 1019)
		})

		Convey("Two large vectors rebalance", func() {
			a := rangeVector(10000)
			b := rangeVectorFrom(10000, 20000)
			c := a.Concat(b)

			So(c.Len(), ShouldEqual, 20000)
			for _, i := range []int{0, 9999, 10000, 10001, 15000, 19999} {
				So(c.Get(i), ShouldEqual, i)
			}

			Convey("The operands are unchanged", func() {
				So(a.Len(), ShouldEqual, 10000)
				So(b.Len(), ShouldEqual, 10000)
				So(a.Get(9999), ShouldEqual, 9999)
				So(b.Get(0), ShouldEqual, 10000)
			})
		})

		Convey("Operands of different depths rebalance", func() {
			a := rangeVector(40)
			b := rangeVectorFrom(40, 5000)
			c := a.Concat(b)

			So(c.Len(), ShouldEqual, 5000)
			for _, i := range []int{0, 39, 40, 41, 1024, 4999} {
				So(c.Get(i), ShouldEqual, i)
			}

			d := b.Concat(a)
			So(d.Len(), ShouldEqual, 5000)
			So(d.Get(0), ShouldEqual, 40)
			So(d.Get(4959), ShouldEqual, 4999)
			So(d.Get(4960), ShouldEqual, 0)
			So(d.Get(4999), ShouldEqual, 39)
		})

		Convey("Lengths always add up", func() {
			sizes := []int{1, 31, 32, 33, 100, 1024, 1025}
			for _, n := range sizes {
				for _, m := range sizes {
					a, b := rangeVector(n), rangeVectorFrom(n, n+m)
					c := a.Concat(b)

					So(c.Len(), ShouldEqual, n+m)
					So(c.Get(0), ShouldEqual, 0)
					So(c.Get(n-1), ShouldEqual, n-1)
					So(c.Get(n), ShouldEqual, n)
					So(c.Get(n+m-1), ShouldEqual, n+m-1)
				}
			}
		})

		Convey("Chained concatenations of unaligned pieces stay ordered", func() {
			v := vec.Empty[int]()
			next := 0
			for _, size := range []int{7, 40, 500, 3, 33, 1500, 65, 1} {
				v = v.Concat(rangeVectorFrom(next, next+size))
				next += size
			}

			So(v.Len(), ShouldEqual, next)
			for i := 0; i < next; i += 97 {
				So(v.Get(i), ShouldEqual, i)
			}
			So(v.Get(next-1), ShouldEqual, next-1)
		})
	})
}
