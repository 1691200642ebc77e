package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 10 * Hz
		Expect(f.Period()).To(BeNumerically("==", 0.1))
	})

	It("should get this tick", func() {
		var f = 10 * Hz
		Expect(f.ThisTick(0.05)).To(BeNumerically("~", 0.1, 1e-12))
	})

	It("should get this tick on a tick boundary", func() {
		var f = 10 * Hz
		Expect(f.ThisTick(0.1)).To(BeNumerically("~", 0.1, 1e-12))
	})

	It("should get the next tick", func() {
		var f = 10 * Hz
		Expect(f.NextTick(0.1)).To(BeNumerically("~", 0.2, 1e-12))
	})

	It("should get the next tick, if current time is not on a tick", func() {
		var f = 10 * Hz
		Expect(f.NextTick(0.15)).To(BeNumerically("~", 0.2, 1e-12))
	})

	It("should get n cycles later", func() {
		var f = 10 * Hz
		Expect(f.NCyclesLater(12, 0.1)).To(BeNumerically("~", 1.3, 1e-12))
	})

	It("should count cycles", func() {
		var f = 10 * Hz
		Expect(f.Cycle(1.2)).To(Equal(uint64(12)))
	})
})
