package vec_test

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/persistent/pkg/vec"
)

func TestIterator(t *testing.T) {
	Convey("Given a vector of 0..4999", t, func() {
		v := rangeVector(5000)

		Convey("Forward iteration yields every element in order", func() {
			i := 0
			for it := v.Iterator(); it.HasNext(); i++ {
				So(it.Next(), ShouldEqual, i)
			}
			So(i, ShouldEqual, 5000)
		})

		Convey("Reverse iteration yields every element backwards", func() {
			i := 4999
			for it := v.ReverseIterator(); it.HasNext(); i-- {
				So(it.Next(), ShouldEqual, i)
			}
			So(i, ShouldEqual, -1)
		})

		Convey("Next past the end fails", func() {
			it := v.Take(2).Iterator()
			it.Next()
			it.Next()

			So(it.HasNext(), ShouldBeFalse)
			So(panicsWith(vec.ErrIteratorExhausted, func() { it.Next() }), ShouldBeTrue)

			rit := v.Take(1).ReverseIterator()
			rit.Next()
			So(panicsWith(vec.ErrIteratorExhausted, func() { rit.Next() }), ShouldBeTrue)
		})

		Convey("Iterators over the empty vector are born exhausted", func() {
			So(vec.Empty[int]().Iterator().HasNext(), ShouldBeFalse)
			So(vec.Empty[int]().ReverseIterator().HasNext(), ShouldBeFalse)
		})

		Convey("Two iterators advance independently", func() {
			a, b := v.Iterator(), v.Iterator()
			a.Next()
			a.Next()

			So(b.Next(), ShouldEqual, 0)
			So(a.Next(), ShouldEqual, 2)
		})
	})

	Convey("Given a vector with unaligned leaves", t, func() {
		v := rangeVector(40).Concat(rangeVectorFrom(40, 2500))
		for i := range 100 {
			v = v.Prepend(-1 - i)
		}

		Convey("Iteration still visits every element once", func() {
			want := make([]int, 0, v.Len())
			for i := 99; i >= 0; i-- {
				want = append(want, -1-i)
			}
			for i := 0; i < 2500; i++ {
				want = append(want, i)
			}

			So(slices.Collect(v.Values()), ShouldResemble, want)

			got := slices.Collect(vec.Collect(v.Values()).Values())
			So(got, ShouldResemble, want)
		})
	})
}

func TestSeqAdapters(t *testing.T) {
	Convey("Given a vector of 0..99", t, func() {
		v := rangeVector(100)

		Convey("Values ranges forward", func() {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			So(sum, ShouldEqual, 4950)
		})

		Convey("Values stops early when the consumer does", func() {
			var got []int
			for x := range v.Values() {
				if len(got) == 3 {
					break
				}
				got = append(got, x)
			}
			So(got, ShouldResemble, []int{0, 1, 2})
		})

		Convey("All carries indices", func() {
			for i, x := range v.All() {
				So(x, ShouldEqual, i)
			}
		})

		Convey("Backward walks in descending index order", func() {
			last := 100
			for i, x := range v.Backward() {
				So(i, ShouldEqual, last-1)
				So(x, ShouldEqual, i)
				last = i
			}
			So(last, ShouldEqual, 0)
		})

		Convey("Collect round trips", func() {
			So(vec.Equal(vec.Collect(v.Values()), v), ShouldBeTrue)
		})
	})
}
