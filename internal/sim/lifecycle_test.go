package sim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/sim"
	"github.com/san-kum/galaxysim/internal/surface"
)

var _ = Describe("Simulation lifecycle", func() {
	var (
		clock   *sim.Manual
		vp      *sim.Viewport
		raster  *surface.Raster
		s       *sim.Simulation
		options sim.Options
	)

	BeforeEach(func() {
		clock = sim.NewManual()
		vp = sim.NewViewport(400, 180, func(w, h int) (surface.Surface, error) {
			r, err := surface.NewRaster(w, h)
			raster = r
			if err != nil {
				return nil, err
			}
			return r, nil
		})
		options = sim.DefaultOptions()
		options.ParticlesPerGalaxy = 40
		options.Shape.Radius = 40
		options.Source = galaxy.NewSource(3)

		var err error
		s, err = sim.New(clock, options)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("when stopped", func() {
		It("holds no particles and schedules nothing", func() {
			Expect(s.State()).To(Equal(sim.Stopped))
			Expect(s.Particles()).To(BeEmpty())
			Expect(clock.Pending()).To(BeZero())
		})

		It("treats Stop as a no-op", func() {
			s.Stop()
			Expect(s.State()).To(Equal(sim.Stopped))
			Expect(clock.Pending()).To(BeZero())
		})
	})

	Context("when running", func() {
		BeforeEach(func() {
			Expect(s.Start(vp)).To(Succeed())
		})

		AfterEach(func() {
			s.Stop()
		})

		It("owns a fixed-size collection anchored to two centers", func() {
			ps := s.Particles()
			Expect(ps).To(HaveLen(80))
			centers := map[galaxy.Vec2]int{}
			for _, p := range ps {
				centers[p.Anchor]++
			}
			Expect(centers).To(HaveLen(2))
			Expect(centers).To(HaveKeyWithValue(galaxy.Vec2{X: 120, Y: 90}, 40))
			Expect(centers).To(HaveKeyWithValue(galaxy.Vec2{X: 280, Y: 90}, 40))
		})

		It("keeps count and anchors across many ticks", func() {
			anchors := make([]galaxy.Vec2, 0, 80)
			for _, p := range s.Particles() {
				anchors = append(anchors, p.Anchor)
			}
			for i := 0; i < 200; i++ {
				clock.Advance(17 * time.Millisecond)
			}
			Expect(s.Stats().Ticks).To(Equal(200))
			ps := s.Particles()
			Expect(ps).To(HaveLen(80))
			for i, p := range ps {
				Expect(p.Anchor).To(Equal(anchors[i]))
				Expect(p.Finite()).To(BeTrue())
			}
		})

		It("paints the background onto the raster", func() {
			clock.Advance(17 * time.Millisecond)
			c := raster.Image().RGBAAt(0, 0)
			Expect(c.B).To(BeNumerically("~", options.Background.B, 3))
		})

		It("resizes the surface without moving particles", func() {
			before := s.Particles()
			vp.SetSize(640, 360)
			Expect(raster.Image().Bounds().Dx()).To(Equal(640))
			Expect(s.Particles()).To(Equal(before))
		})

		It("releases everything on Stop, however often it is called", func() {
			s.Stop()
			s.Stop()
			Expect(clock.Pending()).To(BeZero())
			Expect(vp.Listeners()).To(BeZero())
			Expect(clock.Advance(time.Second)).To(BeZero())
		})

		It("can be started again after stopping", func() {
			s.Stop()
			Expect(s.Start(vp)).To(Succeed())
			Expect(s.Stats().Starts).To(Equal(2))
			Expect(clock.Pending()).To(Equal(1))
			Expect(vp.Listeners()).To(Equal(1))
		})
	})

	Context("with resize events posted from elsewhere", func() {
		It("applies them before the frame's tick", func() {
			Expect(s.Start(vp)).To(Succeed())
			var sizes [][2]int
			s.AddObserver(sim.ObserverFunc(func(_ int, _ []galaxy.Particle, surf surface.Surface) {
				w, h := surf.Size()
				sizes = append(sizes, [2]int{w, h})
			}))

			clock.Post(func() { vp.SetSize(400, 200) })
			clock.Advance(20 * time.Millisecond)

			Expect(sizes).To(Equal([][2]int{{400, 200}}))
			s.Stop()
		})
	})
})
