package flight_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

func TestFlight(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flight Engine Suite")
}

var _ = Describe("cruise flight", func() {
	var eng *flight.Engine

	BeforeEach(func() {
		eng = flight.NewEngine()
		eng.Initialize(geom.Vec3{Y: 100}, 0)
	})

	It("stays in a bounded altitude band for 10 seconds hands-off", func() {
		eng.Controls().Throttle = 0.7

		minY, maxY := 100.0, 100.0
		for i := 0; i < 600; i++ {
			eng.Update(0.016)
			y := eng.State().Position.Y
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}

		// No runaway climb or dive: the floor clamp bounds below and
		// the energy budget bounds above.
		Expect(minY).To(BeNumerically(">=", eng.Params().GroundHeight))
		Expect(maxY).To(BeNumerically("<", 500.0))
	})

	It("does not turn uncommanded", func() {
		eng.Controls().Throttle = 0.7

		for i := 0; i < 600; i++ {
			eng.Update(0.016)
		}

		// Within a few degrees of the spawn heading.
		Expect(math.Abs(eng.State().Yaw)).To(BeNumerically("<", 5*math.Pi/180))
	})

	It("keeps angular rates smooth and inside their clamps at rest controls", func() {
		p := eng.Params()
		for i := 0; i < 600; i++ {
			eng.Update(0.016)
			s := eng.State()
			Expect(math.Abs(s.PitchRate)).To(BeNumerically("<=", p.MaxPitchRate))
			Expect(math.Abs(s.YawRate)).To(BeNumerically("<=", p.MaxYawRate))
			Expect(math.Abs(s.RollRate)).To(BeNumerically("<=", p.MaxRollRate))
		}
	})

	It("keeps every angle normalized under sustained full deflection", func() {
		eng.Controls().Aileron = 1
		eng.Controls().Elevator = 1

		for i := 0; i < 1200; i++ {
			eng.Update(0.016)
			s := eng.State()
			for _, a := range []float64{s.Pitch, s.Yaw, s.Roll} {
				Expect(a).To(BeNumerically(">", -math.Pi))
				Expect(a).To(BeNumerically("<=", math.Pi))
			}
		}
	})

	It("never reports a speed below the flying floor", func() {
		eng.Controls().Throttle = 0

		for i := 0; i < 1200; i++ {
			eng.Update(0.016)
			Expect(eng.State().Speed).To(BeNumerically(">=", eng.Params().MinSpeed))
		}
	})
})
