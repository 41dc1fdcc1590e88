package service

import (
	"bytes"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	certWidth  = 1200
	certHeight = 800

	FormatPNG  = "png"
	FormatWebP = "webp"
)

var (
	colorBgFrom  = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}
	colorBgTo    = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	colorPrimary = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorAccent  = color.RGBA{0x1e, 0x40, 0xaf, 0xff}
	colorSubtle  = color.RGBA{0x47, 0x55, 0x69, 0xff}
	colorText    = color.RGBA{0x1e, 0x29, 0x3b, 0xff}
	colorMuted   = color.RGBA{0x64, 0x74, 0x8b, 0xff}
)

type faceKey struct {
	bold bool
	size float64
}

// font.Face 不是并发安全的，整个绘制过程持有 renderMu
var (
	renderMu    sync.Mutex
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font
	facesBySize = map[faceKey]font.Face{}
)

func loadFace(bold bool, size float64) (font.Face, error) {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	if fontsErr != nil {
		return nil, fontsErr
	}

	key := faceKey{bold: bold, size: size}
	if f, ok := facesBySize[key]; ok {
		return f, nil
	}
	src := regularFont
	if bold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	facesBySize[key] = f
	return f, nil
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// fillDiagonalGradient 从左上到右下的线性渐变
func fillDiagonalGradient(img *image.RGBA, from, to color.RGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	norm := w*w + h*h
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := (float64(x)*w + float64(y)*h) / norm
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 0xff,
			})
		}
	}
}

// strokeRect 描边矩形，线宽以路径为中心向两侧展开
func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	half := width / 2
	src := image.NewUniform(c)
	outer := image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X+width-half, r.Max.Y+width-half)
	edges := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+width),
		image.Rect(outer.Min.X, outer.Max.Y-width, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+width, outer.Max.Y),
		image.Rect(outer.Max.X-width, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

type textLine struct {
	text   string
	size   float64
	bold   bool
	color  color.Color
	y      int
	x      int
	center bool
}

func drawText(img *image.RGBA, l textLine) error {
	face, err := loadFace(l.bold, l.size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.color),
		Face: face,
	}
	x := l.x
	if l.center {
		x = (img.Bounds().Dx() - d.MeasureString(l.text).Ceil()) / 2
	}
	d.Dot = fixed.P(x, l.y)
	d.DrawString(l.text)
	return nil
}

func certificateLines(data model.CertificateData) []textLine {
	name := data.StudentName
	if name == "" {
		name = "Estudante"
	}

	lines := []textLine{
		{text: "CERTIFICADO DE CONCLUSÃO", size: 48, bold: true, color: colorAccent, y: 140, center: true},
		{text: "Explore IA - Introdução à Inteligência Artificial", size: 24, color: colorSubtle, y: 180, center: true},
		{text: "Certificamos que", size: 28, color: colorText, y: 250, center: true},
		{text: name, size: 36, bold: true, color: colorAccent, y: 300, center: true},
		{text: "concluiu com êxito o curso completo incluindo todos os módulos:", size: 24, color: colorText, y: 350, center: true},
	}

	modules := data.Modules
	if len(modules) == 0 {
		modules = course.IDs()
	}
	for i, id := range modules {
		order := i + 1
		if m, ok := course.Find(id); ok {
			order = m.Order
		}
		lines = append(lines, textLine{
			text:  fmt.Sprintf("• Módulo %d: %s", order, course.DisplayName(id)),
			size:  18,
			color: colorText,
			x:     200,
			y:     390 + i*25,
		})
	}

	return append(lines,
		textLine{text: "Data de conclusão: " + data.CompletionDate, size: 20, color: colorText, y: 600, center: true},
		textLine{text: "ID do certificado: " + data.ID, size: 16, color: colorMuted, y: 630, center: true},
		textLine{text: "Explore IA Platform", size: 24, bold: true, color: colorAccent, y: 720, center: true},
	)
}

// RenderCertificateImage 绘制 1200x800 的证书图片
func RenderCertificateImage(data model.CertificateData) (*image.RGBA, error) {
	renderMu.Lock()
	defer renderMu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, certWidth, certHeight))
	fillDiagonalGradient(img, colorBgFrom, colorBgTo)

	strokeRect(img, image.Rect(20, 20, certWidth-20, certHeight-20), 8, colorPrimary)
	strokeRect(img, image.Rect(40, 40, certWidth-40, certHeight-40), 2, colorAccent)

	for _, l := range certificateLines(data) {
		if err := drawText(img, l); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// EncodeCertificate 按格式编码证书，返回内容和 Content-Type
func EncodeCertificate(data model.CertificateData, format string) ([]byte, string, error) {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatWebP {
		return nil, "", fmt.Errorf("%w: %s", util.ErrUnsupportedFormat, format)
	}

	img, err := RenderCertificateImage(data)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if format == FormatWebP {
		if err := webp.Encode(buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), util.MimeWebP, nil
	}

	if err := png.Encode(buf, img); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), util.MimePNG, nil
}
