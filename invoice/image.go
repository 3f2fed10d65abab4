package invoice

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

const (
	imageWidth   = 520
	lineHeight   = 18
	leftMargin   = 24
	topMargin    = 32
	bottomMargin = 24
)

func (r *Renderer) renderImage(order models.Order, now time.Time) (Artifact, error) {
	lines := r.textLines(order, now)

	height := topMargin + lineHeight*len(lines) + bottomMargin
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(leftMargin, topMargin+lineHeight*i)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		FileName: fmt.Sprintf("invoice-%s.png", invoiceNumber(order)),
		MIME:     "image/png",
		Data:     buf.Bytes(),
	}, nil
}

func (r *Renderer) textLines(order models.Order, now time.Time) []string {
	lines := []string{
		r.Seller.Name,
		r.Seller.Address,
		r.Seller.Phone,
		"",
		fmt.Sprintf("Invoice %s", invoiceNumber(order)),
		fmt.Sprintf("Date    %s", now.Format("02 Jan 2006")),
		"",
		fmt.Sprintf("Billed To  %s", order.CustomerName),
		fmt.Sprintf("Phone      %s", order.CustomerPhone),
		fmt.Sprintf("Address    %s", order.ShippingAddress),
		"",
		fmt.Sprintf("%-28s %10s %5s %10s", "Item", "Unit", "Qty", "Total"),
	}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%-28s %10.2f %5d %10.2f",
			truncate(item.Title, 28), item.UnitPrice, item.Quantity,
			item.UnitPrice*float64(item.Quantity)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%-28s %27.2f", "Subtotal", Subtotal(order)),
		fmt.Sprintf("%-28s %27s", "Shipping", "Free"),
		fmt.Sprintf("%-28s %27.2f", "Grand Total", order.TotalAmount),
	)
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
