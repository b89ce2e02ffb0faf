package surface

import "image/color"

type OpKind int

const (
	OpFillRect OpKind = iota
	OpBeginPath
	OpFillCircle
	OpResize
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpBeginPath:
		return "begin-path"
	case OpFillCircle:
		return "fill-circle"
	case OpResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call along with the sticky state it ran under.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64
	R         float64
	Fill      color.RGBA
	GlowBlur  float64
	GlowColor color.RGBA
}

// Recorder is a Surface that draws nothing and remembers what it was asked
// to do. With KeepOps false it only counts.
type Recorder struct {
	KeepOps bool
	Ops     []Op

	Rects   int
	Paths   int
	Circles int
	Glowing int
	Resizes int

	width, height int
	fill          color.RGBA
	glowBlur      float64
	glowColor     color.RGBA
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{KeepOps: true, width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Resizes++
	r.record(Op{Kind: OpResize, W: float64(width), H: float64(height)})
}

func (r *Recorder) SetFillColor(c color.RGBA) { r.fill = c }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Rects++
	r.record(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) BeginPath() {
	r.Paths++
	r.record(Op{Kind: OpBeginPath})
}

func (r *Recorder) SetGlow(blur float64, c color.RGBA) {
	r.glowBlur, r.glowColor = blur, c
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.Circles++
	if r.glowBlur > 0 {
		r.Glowing++
	}
	r.record(Op{Kind: OpFillCircle, X: x, Y: y, R: radius})
}

// GlowBlur reports the glow currently in effect.
func (r *Recorder) GlowBlur() float64 { return r.glowBlur }

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Rects, r.Paths, r.Circles, r.Glowing, r.Resizes = 0, 0, 0, 0, 0
}

func (r *Recorder) record(op Op) {
	if !r.KeepOps {
		return
	}
	op.Fill = r.fill
	op.GlowBlur, op.GlowColor = r.glowBlur, r.glowColor
	r.Ops = append(r.Ops, op)
}
