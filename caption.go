package slideshow

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextAlign positions a caption horizontally within its inset frame.
type TextAlign int

// Supported caption alignments.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// A CaptionStyle holds the styling and layout constants of a caption overlay.
type CaptionStyle struct {
	// Font is the typeface to draw with. A nil Font uses Go Bold.
	Font     *opentype.Font
	FontSize float64
	Color    color.Color
	Align    TextAlign

	ShadowColor   color.Color
	ShadowOffset  image.Point
	ShadowRadius  float64
	ShadowOpacity float64

	// Inset is the horizontal distance kept from both the left and right
	// edges of the surface. The caption is always flush with the top edge.
	Inset int
}

// DefaultCaptionStyle returns a bold yellow, left aligned caption with an
// opaque black drop shadow.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		FontSize:      14,
		Color:         color.NRGBA{R: 0xff, G: 0xff, A: 0xff},
		Align:         AlignLeft,
		ShadowColor:   color.Black,
		ShadowOffset:  image.Pt(2, 2),
		ShadowRadius:  3,
		ShadowOpacity: 1,
		Inset:         5,
	}
}

var (
	goBoldOnce sync.Once
	goBold     *opentype.Font
	goBoldErr  error
)

func defaultFont() (*opentype.Font, error) {
	goBoldOnce.Do(func() {
		goBold, goBoldErr = opentype.Parse(gobold.TTF)
	})
	return goBold, goBoldErr
}

func (cs CaptionStyle) face() (font.Face, error) {
	f := cs.Font
	if f == nil {
		var err error
		f, err = defaultFont()
		if err != nil {
			return nil, errors.Wrap(err, "error parsing default caption font")
		}
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cs.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// A Caption is a single line text overlay anchored to the top edge of a
// surface.
type Caption struct {
	id    string
	text  string
	style CaptionStyle
}

// NewCaption returns a caption overlay. Only the first line of text is shown.
func NewCaption(text string, style CaptionStyle) *Caption {
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx]
	}
	return &Caption{
		id:    uuid.NewString(),
		text:  text,
		style: style,
	}
}

// ID uniquely identifies this caption.
func (c *Caption) ID() string {
	return c.id
}

// Kind returns OverlayCaption.
func (c *Caption) Kind() OverlayKind {
	return OverlayCaption
}

// Text returns the single line of text drawn.
func (c *Caption) Text() string {
	return c.text
}

// Style returns the style the caption is drawn with.
func (c *Caption) Style() CaptionStyle {
	return c.style
}

// Frame returns where the caption is laid out on a surface with the given
// bounds: flush to the top, sized to its text, and kept within the horizontal
// insets.
func (c *Caption) Frame(bounds image.Rectangle) image.Rectangle {
	face, err := c.style.face()
	if err != nil {
		Logger.Debugw("error creating caption face", "error", err)
		return image.Rectangle{}
	}
	defer face.Close()
	return c.frame(face, bounds)
}

func (c *Caption) frame(face font.Face, bounds image.Rectangle) image.Rectangle {
	available := bounds.Dx() - 2*c.style.Inset
	if c.text == "" || available <= 0 {
		return image.Rectangle{}
	}
	width := font.MeasureString(face, c.text).Ceil()
	if width > available {
		width = available
	}
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if height > bounds.Dy() {
		height = bounds.Dy()
	}

	x := bounds.Min.X + c.style.Inset
	switch c.style.Align {
	case AlignCenter:
		x += (available - width) / 2
	case AlignRight:
		x += available - width
	case AlignLeft:
	}
	return image.Rect(x, bounds.Min.Y, x+width, bounds.Min.Y+height)
}

// Draw paints the shadow and then the text onto dst.
func (c *Caption) Draw(dst draw.Image, bounds image.Rectangle) {
	face, err := c.style.face()
	if err != nil {
		Logger.Debugw("error creating caption face", "error", err)
		return
	}
	defer face.Close()

	frame := c.frame(face, bounds)
	if frame.Empty() {
		return
	}

	sigma := c.style.ShadowRadius / 2
	pad := int(math.Ceil(sigma * 3))
	mask := image.NewAlpha(image.Rect(0, 0, frame.Dx()+2*pad, frame.Dy()+2*pad))
	clip, ok := mask.SubImage(image.Rect(pad, pad, pad+frame.Dx(), pad+frame.Dy())).(*image.Alpha)
	if !ok {
		return
	}
	drawer := font.Drawer{
		Dst:  clip,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pad, pad+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(c.text)

	target := frame.Inset(-pad)
	if c.style.ShadowColor != nil && c.style.ShadowOpacity > 0 {
		var shadowMask image.Image = mask
		if sigma > 0 {
			shadowMask = imaging.Blur(mask, sigma)
		}
		shadow := color.NRGBAModel.Convert(c.style.ShadowColor).(color.NRGBA)
		shadow.A = uint8(math.Round(float64(shadow.A) * math.Min(c.style.ShadowOpacity, 1)))
		draw.DrawMask(
			dst, target.Add(c.style.ShadowOffset), image.NewUniform(shadow), image.Point{},
			shadowMask, shadowMask.Bounds().Min, draw.Over,
		)
	}
	textColor := c.style.Color
	if textColor == nil {
		textColor = DefaultCaptionStyle().Color
	}
	draw.DrawMask(dst, target, image.NewUniform(textColor), image.Point{}, mask, image.Point{}, draw.Over)
}
