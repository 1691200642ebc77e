package hal

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ventlab/breath/hooking"
)

type changeCollector struct {
	changes []LineChange
}

func (c *changeCollector) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosLineChange {
		return
	}

	c.changes = append(c.changes, ctx.Item.(LineChange))
}

var _ = Describe("MemBank", func() {
	var bank *MemBank

	BeforeEach(func() {
		bank = NewMemBank()
	})

	It("should start with all lines low", func() {
		for i := 0; i < NumLines; i++ {
			Expect(bank.Read(Line(i))).To(BeFalse())
		}
	})

	It("should set and clear lines", func() {
		bank.Set(LineInhale)
		Expect(bank.Read(LineInhale)).To(BeTrue())

		bank.Clear(LineInhale)
		Expect(bank.Read(LineInhale)).To(BeFalse())
	})

	It("should toggle lines", func() {
		bank.Toggle(LinePhaseClock)
		Expect(bank.Read(LinePhaseClock)).To(BeTrue())

		bank.Toggle(LinePhaseClock)
		Expect(bank.Read(LinePhaseClock)).To(BeFalse())
	})

	It("should notify hooks on level changes", func() {
		collector := &changeCollector{}
		bank.AcceptHook(collector)

		bank.Set(LineExhale)
		bank.Clear(LineExhale)

		Expect(collector.changes).To(Equal([]LineChange{
			{Line: LineExhale, Level: true},
			{Line: LineExhale, Level: false},
		}))
	})

	It("should not notify hooks when the level does not change", func() {
		collector := &changeCollector{}
		bank.AcceptHook(collector)

		bank.Clear(LineExhale)
		bank.Set(LineExhale)
		bank.Set(LineExhale)

		Expect(collector.changes).To(HaveLen(1))
	})

	It("should notify hooks on every toggle", func() {
		collector := &changeCollector{}
		bank.AcceptHook(collector)

		bank.Toggle(LinePhaseClock)
		bank.Toggle(LinePhaseClock)

		Expect(collector.changes).To(HaveLen(2))
	})

	It("should panic on an unknown line", func() {
		Expect(func() { bank.Set(Line(100)) }).To(Panic())
	})
})
