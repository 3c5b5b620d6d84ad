package domain_test

import (
	"avda/domain"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SimulationType", func() {
	It("should resolve display names", func() {
		Expect(domain.KineticPenetration.DisplayName()).To(Equal("Kinetic Penetration"))
		Expect(domain.ShapedCharge.DisplayName()).To(Equal("Shaped Charge"))
		Expect(domain.ExplosiveImpact.DisplayName()).To(Equal("Explosive Impact"))
	})

	It("should fall back to the unknown label for unmapped values", func() {
		Expect(domain.SimulationType(0).DisplayName()).To(Equal(domain.UnknownTypeDisplayName))
		Expect(domain.SimulationType(99).DisplayName()).To(Equal(domain.UnknownTypeDisplayName))
	})

	It("should tell valid values from invalid ones", func() {
		Expect(domain.KineticPenetration.IsValid()).To(BeTrue())
		Expect(domain.SimulationType(4).IsValid()).To(BeFalse())
	})

	It("should list display items in declaration order", func() {
		items := domain.SimulationTypeItems()
		Expect(items).To(Equal([]domain.EnumItem{
			{Value: 1, Name: "KineticPenetration", DisplayName: "Kinetic Penetration"},
			{Value: 2, Name: "ShapedCharge", DisplayName: "Shaped Charge"},
			{Value: 3, Name: "ExplosiveImpact", DisplayName: "Explosive Impact"},
		}))
	})
})

var _ = Describe("SimulationStatus", func() {
	It("should resolve display names", func() {
		Expect(domain.StatusNotCalculated.DisplayName()).To(Equal("Not Calculated"))
		Expect(domain.StatusCalculating.DisplayName()).To(Equal("Calculating"))
		Expect(domain.StatusCompleted.DisplayName()).To(Equal("Completed"))
		Expect(domain.StatusError.DisplayName()).To(Equal("Calculation Error"))
		Expect(domain.StatusCancelled.DisplayName()).To(Equal("Cancelled"))
		Expect(domain.StatusPaused.DisplayName()).To(Equal("Paused"))
	})

	It("should fall back to the unknown label for unmapped values", func() {
		Expect(domain.SimulationStatus(-1).DisplayName()).To(Equal(domain.UnknownStatusDisplayName))
		Expect(domain.SimulationStatus(6).DisplayName()).To(Equal(domain.UnknownStatusDisplayName))
	})

	It("should list display items in declaration order", func() {
		items := domain.SimulationStatusItems()
		Expect(len(items)).To(Equal(6))
		Expect(items[0]).To(Equal(domain.EnumItem{Value: 0, Name: "NotCalculated", DisplayName: "Not Calculated"}))
		Expect(items[3]).To(Equal(domain.EnumItem{Value: 3, Name: "Error", DisplayName: "Calculation Error"}))
		Expect(items[5]).To(Equal(domain.EnumItem{Value: 5, Name: "Paused", DisplayName: "Paused"}))
	})
})

var _ = Describe("CasePagedRequest", func() {
	It("should fill paging defaults", func() {
		q := domain.CasePagedRequest{}.Normalized()
		Expect(q.PageNumber).To(Equal(1))
		Expect(q.PageSize).To(Equal(domain.DefaultPageSize))
	})

	It("should clamp paging values into the supported range", func() {
		q := domain.CasePagedRequest{PageNumber: -3, PageSize: 1000}.Normalized()
		Expect(q.PageNumber).To(Equal(1))
		Expect(q.PageSize).To(Equal(domain.MaxPageSize))

		q = domain.CasePagedRequest{PageNumber: 4, PageSize: 50}.Normalized()
		Expect(q.PageNumber).To(Equal(4))
		Expect(q.PageSize).To(Equal(50))
	})
})
