package units_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/airlabcastle-commits/id-card-generator/pkg/units"
)

const tolerance = 1e-9

var _ = Describe("Unit conversions", func() {
	DescribeTable("CmToPixels",
		func(cm, dpi, expected float64) {
			Expect(units.CmToPixels(cm, dpi)).To(BeNumerically("~", expected, tolerance))
		},
		Entry("one inch worth of cm at 96 dpi", 2.54, 96.0, 96.0),
		Entry("card width at 96 dpi", 14.0, 96.0, 14.0/2.54*96.0),
		Entry("zero is zero", 0.0, 300.0, 0.0),
	)

	DescribeTable("MmToPixels",
		func(mm, dpi, expected float64) {
			Expect(units.MmToPixels(mm, dpi)).To(BeNumerically("~", expected, tolerance))
		},
		Entry("one inch worth of mm at 72 dpi", 25.4, 72.0, 72.0),
		Entry("one mm at 300 dpi", 1.0, 300.0, 300.0/25.4),
	)

	DescribeTable("PixelsToMm",
		func(px, dpi, expected float64) {
			Expect(units.PixelsToMm(px, dpi)).To(BeNumerically("~", expected, tolerance))
		},
		Entry("96 px at 96 dpi is an inch", 96.0, 96.0, 25.4),
		Entry("half an inch at 300 dpi", 150.0, 300.0, 12.7),
	)

	Context("round trips", func() {
		DescribeTable("PixelsToMm inverts MmToPixels",
			func(mm, dpi float64) {
				Expect(units.PixelsToMm(units.MmToPixels(mm, dpi), dpi)).
					To(BeNumerically("~", mm, 1e-9))
			},
			Entry("typical card coordinate", 70.0, 96.0),
			Entry("sub-millimeter value", 0.37, 300.0),
			Entry("large value", 9999.25, 72.0),
			Entry("zero", 0.0, 150.0),
		)

		It("round trips cm through pixels", func() {
			px := units.CmToPixels(9.5, 144)
			Expect(units.PixelsToMm(px, 144)).To(BeNumerically("~", 95.0, 1e-9))
		})

		It("round trips mm through points", func() {
			Expect(units.PointsToMm(units.MmToPoints(140))).
				To(BeNumerically("~", 140.0, 1e-9))
		})
	})

	It("maps 140mm to the expected point width", func() {
		Expect(units.MmToPoints(140)).To(BeNumerically("~", 140.0/25.4*72.0, tolerance))
	})
})
