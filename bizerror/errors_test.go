package bizerror_test

import (
	"avda/bizerror"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("ErrBadParam", func() {
		Describe("Error", func() {
			It("should return default message if cause is nil", func() {
				err := bizerror.ErrBadParam{}
				Expect(err.Error()).To(Equal("common.bad_param"))
			})
			It("should invoke the Error() function of cause property if cause is not nil", func() {
				err := bizerror.ErrBadParam{Cause: bizerror.ErrNotFound}
				Expect(err.Error()).To(Equal("record not found"))
			})
		})
	})

	Describe("ErrWorkingPathUnavailable", func() {
		It("should carry the path in message and response", func() {
			cause := errors.New("permission denied")
			err := bizerror.ErrWorkingPathUnavailable{Path: "/data/cases/c1", Cause: cause}
			Expect(err.Error()).To(Equal("working path unavailable: /data/cases/c1: permission denied"))
			Expect(err.Unwrap()).To(Equal(cause))

			respond := err.Respond()
			Expect(respond.Status).To(Equal(http.StatusBadRequest))
			Expect(respond.Code).To(Equal("simulation_case.working_path_unavailable"))
			Expect(respond.Data).To(Equal("/data/cases/c1"))
		})

		It("should build a message without cause", func() {
			err := bizerror.ErrWorkingPathUnavailable{Path: "/data/cases/c2"}
			Expect(err.Error()).To(Equal("working path unavailable: /data/cases/c2"))
			Expect(err.Unwrap()).To(BeNil())
		})
	})
})
