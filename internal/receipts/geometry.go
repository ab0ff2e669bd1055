// Package receipts lays out per-seat receipts (stub + main receipt) on
// fixed-size pages and draws them on a pdfdoc.Surface.
package receipts

import "fmt"

// Geometry is the page configuration, millimetres. The yaml keys are the ones
// accepted by the RECEIPT_CONFIG file.
type Geometry struct {
	PageWidth       float64 `yaml:"pageWidth" validate:"gt=0"`
	PageHeight      float64 `yaml:"pageHeight" validate:"gt=0"`
	ReceiptsPerPage int     `yaml:"receiptsPerPage" validate:"gt=0,lte=20"`
	ReceiptHeight   float64 `yaml:"receiptHeight" validate:"gt=0"`
	ReceiptWidth    float64 `yaml:"receiptWidth" validate:"gt=0"`
	MarginTop       float64 `yaml:"marginTop" validate:"gte=0"`
	MarginLeft      float64 `yaml:"marginLeft" validate:"gte=0"`
	VerticalGap     float64 `yaml:"verticalGap" validate:"gte=0"`
	StubWidth       float64 `yaml:"stubWidth" validate:"gt=0"`
	DividerOffset   float64 `yaml:"dividerOffset" validate:"gte=0"`
}

// DefaultGeometry fits four receipts on an A4 portrait page.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       210,
		PageHeight:      297,
		ReceiptsPerPage: 4,
		ReceiptHeight:   64,
		ReceiptWidth:    190,
		MarginTop:       12,
		MarginLeft:      10,
		VerticalGap:     6,
		StubWidth:       55,
		DividerOffset:   5,
	}
}

// Check verifies that a full page of receipts fits on the page.
func (g Geometry) Check() error {
	if g.ReceiptsPerPage <= 0 {
		return fmt.Errorf("receiptsPerPage must be positive")
	}
	used := g.MarginTop + float64(g.ReceiptsPerPage)*g.ReceiptHeight + float64(g.ReceiptsPerPage-1)*g.VerticalGap
	if used > g.PageHeight {
		return fmt.Errorf("%d receipts need %.1fmm, page height is %.1fmm", g.ReceiptsPerPage, used, g.PageHeight)
	}
	if g.MarginLeft+g.ReceiptWidth > g.PageWidth {
		return fmt.Errorf("receipt width %.1fmm + margin %.1fmm exceeds page width %.1fmm", g.ReceiptWidth, g.MarginLeft, g.PageWidth)
	}
	if g.StubWidth+g.DividerOffset >= g.ReceiptWidth {
		return fmt.Errorf("stub (%.1fmm) and divider offset (%.1fmm) leave no room for the main receipt", g.StubWidth, g.DividerOffset)
	}
	return nil
}

// StubX is where the stub starts.
func (g Geometry) StubX() float64 { return g.MarginLeft }

// MainX is where the main receipt starts.
func (g Geometry) MainX() float64 { return g.StubWidth + g.MarginLeft + g.DividerOffset }

// MainWidth runs from MainX to the right edge of the receipt.
func (g Geometry) MainWidth() float64 { return g.MarginLeft + g.ReceiptWidth - g.MainX() }

// DividerX is the x of the vertical line between stub and main receipt.
func (g Geometry) DividerX() float64 { return g.MarginLeft + g.StubWidth + g.DividerOffset/2 }
