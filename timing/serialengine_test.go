package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Serial Engine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run events in time order", func() {
		handler := NewMockHandler(mockCtrl)

		var handled []VTimeInSec
		handler.EXPECT().
			Handle(gomock.Any()).
			DoAndReturn(func(e Event) error {
				handled = append(handled, e.Time())
				return nil
			}).
			Times(3)

		engine.Schedule(NewEventBase(0.3, handler))
		engine.Schedule(NewEventBase(0.1, handler))
		engine.Schedule(NewEventBase(0.2, handler))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(handled).To(Equal([]VTimeInSec{0.1, 0.2, 0.3}))
	})

	It("should advance the current time to the last event", func() {
		handler := NewMockHandler(mockCtrl)
		handler.EXPECT().Handle(gomock.Any()).Return(nil)

		engine.Schedule(NewEventBase(1.5, handler))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(engine.CurrentTime()).To(BeNumerically("~", 1.5, 1e-12))
	})

	It("should allow a handler to schedule follow-up events", func() {
		handler := NewMockHandler(mockCtrl)

		count := 0
		handler.EXPECT().
			Handle(gomock.Any()).
			DoAndReturn(func(e Event) error {
				count++
				if count < 5 {
					engine.Schedule(NewEventBase(e.Time()+0.1, handler))
				}
				return nil
			}).
			Times(5)

		engine.Schedule(NewEventBase(0.1, handler))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(5))
		Expect(engine.CurrentTime()).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("should panic when scheduling an event in the past", func() {
		handler := NewMockHandler(mockCtrl)
		handler.EXPECT().Handle(gomock.Any()).Return(nil)

		engine.Schedule(NewEventBase(1.0, handler))
		err := engine.Run()
		Expect(err).ToNot(HaveOccurred())

		Expect(func() {
			engine.Schedule(NewEventBase(0.5, handler))
		}).To(Panic())
	})

	It("should invoke hooks around every event", func() {
		handler := NewMockHandler(mockCtrl)
		handler.EXPECT().Handle(gomock.Any()).Return(nil)

		hook := &posCountingHook{counts: map[string]int{}}
		engine.AcceptHook(hook)

		engine.Schedule(NewEventBase(0.1, handler))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(hook.counts[HookPosBeforeEvent.Name]).To(Equal(1))
		Expect(hook.counts[HookPosAfterEvent.Name]).To(Equal(1))
	})
})
