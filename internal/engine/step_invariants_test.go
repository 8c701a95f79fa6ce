package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravlab/internal/engine"
)

var _ = Describe("Collection stepping", func() {
	var col *engine.Collection

	BeforeEach(func() {
		col = engine.NewCollection()
	})

	Describe("the accumulation/displacement barrier", func() {
		It("computes every impulse from pre-step positions", func() {
			a, err := col.AddBody(1.0, engine.Vec2{X: 0}, engine.Vec2{})
			Expect(err).NotTo(HaveOccurred())
			b, err := col.AddBody(1.0, engine.Vec2{X: 10}, engine.Vec2{})
			Expect(err).NotTo(HaveOccurred())

			col.Step()

			Expect(a.Momentum()).To(Equal(engine.Vec2{X: 0.05}))
			Expect(b.Momentum()).To(Equal(engine.Vec2{X: -0.05}))
		})

		It("does not let step k+1 observe uncommitted state from step k", func() {
			a, _ := col.AddBody(1.0, engine.Vec2{X: 0}, engine.Vec2{})
			col.AddBody(1.0, engine.Vec2{X: 10}, engine.Vec2{})

			col.Step()
			after1 := a.Position()
			col.Step()

			// Second step displaces from the first step's committed
			// position, by the accumulated (not recomputed) momentum.
			Expect(a.Position().X).To(BeNumerically(">", after1.X))
		})
	})

	Describe("capacity", func() {
		It("rejects the body after the tenth without mutating the set", func() {
			for i := 0; i < engine.MaxBodies; i++ {
				_, err := col.AddBody(0.5, engine.Vec2{X: float64(i)}, engine.Vec2{})
				Expect(err).NotTo(HaveOccurred())
			}

			_, err := col.AddBody(0.5, engine.Vec2{}, engine.Vec2{})
			Expect(err).To(MatchError(engine.ErrCapacityExceeded))
			Expect(col.Len()).To(Equal(engine.MaxBodies))
		})
	})

	Describe("trail recording", func() {
		It("never exceeds the configured capacity", func() {
			b, _ := col.AddBody(1.0, engine.Vec2{}, engine.Vec2{X: 1})
			Expect(b.SetTrailCapacity(5)).To(Succeed())

			col.RunSteps(25)

			Expect(b.TrailLen()).To(BeNumerically("<=", 5))
		})

		It("records the position before displacement", func() {
			b, _ := col.AddBody(1.0, engine.Vec2{X: 3, Y: 4}, engine.Vec2{X: 1})
			Expect(b.SetTrailCapacity(5)).To(Succeed())

			col.Step()

			Expect(b.Trail()[0]).To(Equal(engine.Vec2{X: 3, Y: 4}))
		})
	})
})
