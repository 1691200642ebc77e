package hal

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegisterBank", func() {
	var bank *RegisterBank

	BeforeEach(func() {
		bank = NewRegisterBank()
	})

	It("should map lines onto port bits", func() {
		bank.Set(LineInhale)
		bank.Set(LineReturn)

		Expect(bank.Port()).To(Equal(uint8(0b00000101)))

		bank.Clear(LineInhale)
		Expect(bank.Port()).To(Equal(uint8(0b00000100)))
	})

	It("should toggle port bits", func() {
		bank.Toggle(LinePhaseClock)
		Expect(bank.Port()).To(Equal(uint8(0b00001000)))

		bank.Toggle(LinePhaseClock)
		Expect(bank.Port()).To(Equal(uint8(0)))
	})

	It("should read outputs back from the latch", func() {
		bank.Set(LineExhale)
		Expect(bank.Read(LineExhale)).To(BeTrue())
	})

	It("should sample inputs from the input image", func() {
		Expect(bank.Read(LineViolation)).To(BeFalse())

		bank.Drive(LineViolation, true)
		Expect(bank.Read(LineViolation)).To(BeTrue())

		bank.Drive(LineViolation, false)
		Expect(bank.Read(LineViolation)).To(BeFalse())
	})

	It("should not let outputs be driven externally", func() {
		Expect(func() { bank.Drive(LineInhale, true) }).To(Panic())
	})
})
