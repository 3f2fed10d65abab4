package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

// Format selects the artifact an invoice is rendered into.
type Format string

const (
	FormatImage    Format = "image"    // PNG raster
	FormatDocument Format = "document" // spreadsheet document
)

// Artifact is a downloadable invoice rendering.
type Artifact struct {
	FileName string
	MIME     string
	Data     []byte
}

// Seller is the identity block printed at the top of every invoice.
type Seller struct {
	Name    string
	Address string
	Phone   string
}

// DefaultSeller is the shop's own identity.
var DefaultSeller = Seller{
	Name:    "Fashion By Nira",
	Address: "Chennai, Tamil Nadu",
	Phone:   "+91 98765 43210",
}

// Renderer builds the fixed invoice layout: seller block, billed-to block,
// line table (unit price x quantity = line total), subtotal, free shipping,
// grand total. The date stamp is "now", so rendering the same order on a
// different day yields a different artifact; that is expected.
type Renderer struct {
	Seller Seller
	Now    func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Seller: DefaultSeller, Now: time.Now}
}

// Render produces the invoice artifact for the order in the given format.
func (r *Renderer) Render(order models.Order, format Format) (Artifact, error) {
	now := r.Now()
	switch format {
	case FormatImage:
		return r.renderImage(order, now)
	case FormatDocument:
		return r.renderDocument(order, now)
	default:
		return Artifact{}, fmt.Errorf("unknown invoice format %q", format)
	}
}

func (r *Renderer) renderDocument(order models.Order, now time.Time) (Artifact, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Invoice")
	if err != nil {
		return Artifact{}, err
	}

	addRow := func(values ...interface{}) {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().SetValue(v)
		}
	}

	// Seller block
	addRow(r.Seller.Name)
	addRow(r.Seller.Address)
	addRow(r.Seller.Phone)
	addRow()
	addRow("Invoice", invoiceNumber(order))
	addRow("Date", now.Format("02 Jan 2006"))
	addRow()

	// Billed-to block
	addRow("Billed To", order.CustomerName)
	addRow("Phone", order.CustomerPhone)
	addRow("Address", order.ShippingAddress)
	addRow()

	// Line table
	addRow("Item", "Unit Price", "Quantity", "Total")
	for _, item := range order.Items {
		addRow(item.Title, item.UnitPrice, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}
	addRow()
	addRow("Subtotal", "", "", Subtotal(order))
	addRow("Shipping", "", "", "Free")
	addRow("Grand Total", "", "", order.TotalAmount)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		FileName: fmt.Sprintf("invoice-%s.xlsx", invoiceNumber(order)),
		MIME:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:     buf.Bytes(),
	}, nil
}

// Subtotal sums the line totals from the order snapshot.
func Subtotal(order models.Order) float64 {
	var total float64
	for _, item := range order.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func invoiceNumber(order models.Order) string {
	if order.OrderRef != "" {
		return order.OrderRef
	}
	return fmt.Sprintf("%d", order.ID)
}
