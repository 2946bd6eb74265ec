package overlay

import (
	"errors"
)

// ErrNotReady is returned when the mapper is invoked before the video's
// intrinsic dimensions are known. Callers must defer the frame rather
// than draw with NaN/Inf coordinates.
var ErrNotReady = errors.New("overlay: intrinsic video size not ready")

// LabelMargin is the distance from the surface's top edge under which a
// box label is flipped below the box's top edge to avoid clipping.
const LabelMargin = 20.0

// DefaultClasses is the allow-list of semantically relevant detection
// classes drawn on the overlay. Everything else is computed upstream but
// discarded here; a policy decision, not a mapper defect.
var DefaultClasses = []string{
	"person", "car", "truck", "bus", "motorcycle", "bicycle", "dog", "cat",
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle. For detections it is expressed in
// the video's intrinsic pixel space; for instructions, in the coordinate
// space of the overlay surface.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection is a single detector output box with its class label and
// confidence score in [0,1].
type Detection struct {
	Class string  `json:"class"`
	Score float64 `json:"score"`
	Box   Rect    `json:"box"`
}

// Instruction is one drawing command in overlay-surface coordinates.
// LabelX/LabelY anchor the label at the box's top-left; LabelBelow marks
// the flipped placement used near the surface's top edge.
type Instruction struct {
	Class      string  `json:"class"`
	Score      float64 `json:"score"`
	Box        Rect    `json:"box"`
	LabelX     float64 `json:"label_x"`
	LabelY     float64 `json:"label_y"`
	LabelBelow bool    `json:"label_below"`
}

// Mapper rescales detection boxes from intrinsic video space to the
// displayed, possibly letterboxed, content rectangle. It is a pure
// function of its inputs and holds no per-frame state beyond the class
// allow-list policy.
type Mapper struct {
	allowed map[string]struct{}
}

// NewMapper builds a mapper drawing only the given classes. An empty
// list falls back to DefaultClasses.
func NewMapper(classes []string) *Mapper {
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	allowed := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		allowed[c] = struct{}{}
	}
	return &Mapper{allowed: allowed}
}

// Map converts one inference result into drawing instructions.
//
// intrinsic is the video's native decoded resolution. content is the
// displayed content rectangle: its X/Y are the offset of the video
// content relative to the overlay surface's origin (non-zero under
// letterboxing), its Width/Height the rendered content size. Scale
// factors are computed independently per axis; aspect lock is the
// caller's concern.
func (m *Mapper) Map(detections []Detection, intrinsic Size, content Rect) ([]Instruction, error) {
	if intrinsic.Width <= 0 || intrinsic.Height <= 0 {
		return nil, ErrNotReady
	}

	scaleX := content.Width / intrinsic.Width
	scaleY := content.Height / intrinsic.Height

	out := make([]Instruction, 0, len(detections))
	for _, det := range detections {
		if _, ok := m.allowed[det.Class]; !ok {
			continue
		}

		box := Rect{
			X:      det.Box.X*scaleX + content.X,
			Y:      det.Box.Y*scaleY + content.Y,
			Width:  det.Box.Width * scaleX,
			Height: det.Box.Height * scaleY,
		}

		inst := Instruction{
			Class:  det.Class,
			Score:  det.Score,
			Box:    box,
			LabelX: box.X,
			LabelY: box.Y - LabelMargin,
		}
		if box.Y < LabelMargin {
			// Too close to the surface top: place the label below the
			// box's top edge instead of above it.
			inst.LabelY = box.Y
			inst.LabelBelow = true
		}
		out = append(out, inst)
	}
	return out, nil
}
