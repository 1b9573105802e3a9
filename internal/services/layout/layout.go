// Package layout draws check faces onto a drawing surface.
// All coordinates are inches from the top-left corner of the check's slot.
package layout

import (
	"fmt"
	"strconv"

	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
)

// SlotHeight is the height of one check face; three slots share a Letter page
const SlotHeight = 11.2 / domain.ChecksPerPage

// Slot returns the 1-based page and the 0-based slot of the index-th check of a batch
func Slot(index int) (page, slot int) {
	return index/domain.ChecksPerPage + 1, index % domain.ChecksPerPage
}

// SlotOffset returns the vertical offset of a slot from the top of the page
func SlotOffset(slot int) float64 {
	return float64(slot) * SlotHeight
}

// MICRLine builds the E-13B line: check number, routing number and account number
// delimited by the "c" (on-us) and "a" (transit) control symbols of the MICR font.
func MICRLine(check domain.Check) string {
	return fmt.Sprintf("c%06dc a%sa %sc", check.Number, check.Issuer.Bank.RoutingNumber, check.Issuer.AccountNumber)
}

// PrintMICR draws the machine-readable line along the bottom of the check
func PrintMICR(check domain.Check, s ports.Surface) {
	s.SetPosition(1.3, 3)
	s.UseFont(ports.FontMICR, 18)
	s.PrintCell(MICRLine(check), ports.CellOptions{Width: 7, Height: 0.25})
}

// PrintCheckLabels draws the static template shared by every check
func PrintCheckLabels(s ports.Surface) {
	// date
	s.HorizontalLine(6.875, 1, 1)
	s.SetPosition(6.5, 0.75)
	s.UseFont(ports.FontHandwriting, 12)
	s.PrintCell("Date", ports.CellOptions{Width: 0.5, Height: 0.25})

	// payee
	s.SetPosition(0.375, 1.1)
	s.UseFont(ports.FontHandwriting, 10)
	s.PrintCell("Pay to the", ports.CellOptions{Width: 0.85, Height: 0.25})

	s.SetPosition(0.375, 1.25)
	s.PrintCell("order of", ports.CellOptions{Width: 0.85, Height: 0.25})

	s.HorizontalLine(0.875, 1.45, 5.625)
	s.VerticalLine(6.5, 1.25, 0.2)

	// numeric amount
	s.SetPosition(6.6, 1.2)
	s.UseFont(ports.FontHandwriting, 13)
	s.PrintCell("$", ports.CellOptions{Width: 0.15, Height: 0.25})

	s.Box(6.75, 1.2, 1.1, 0.25)

	// written amount
	s.SetPosition(7.05, 1.55)
	s.UseFont(ports.FontHandwriting, 15)
	s.PrintCell("Dollars", ports.CellOptions{Width: 1, Height: 0.25})

	s.HorizontalLine(0.375, 1.825, 6.675)

	// memo
	s.HorizontalLine(0.65, 2.52, 2.35)
	s.SetPosition(1.3, 2.5)
	s.UseFont(ports.FontHandwriting, 10)
	s.PrintCell("Memo", ports.CellOptions{Width: 1, Height: 0.25})

	// signature
	s.HorizontalLine(5.15, 2.52, 2.35)
	s.SetPosition(5.8, 2.5)
	s.UseFont(ports.FontHandwriting, 10)
	s.PrintCell("Authorized Signature", ports.CellOptions{Width: 1, Height: 0.25})
}

// PrintCheckInformation draws the issuer, bank and check number header
func PrintCheckInformation(check domain.Check, s ports.Surface) {
	issuer := check.Issuer

	// payer
	s.SetPosition(0.6, 0.25)
	s.UseFont(ports.FontMetadata, 16)
	s.PrintCell(issuer.Name, ports.CellOptions{Width: 2.8, Height: 0.25, Align: ports.AlignCenter})

	s.SetPosition(0.6, 0.5)
	s.UseFont(ports.FontMetadata, 11)
	s.PrintCell(issuer.Details, ports.CellOptions{Width: 2.8, Height: 0.25, Align: ports.AlignCenter})

	// bank
	s.SetPosition(4, 0.275)
	s.UseFont(ports.FontMetadata, 13)
	s.PrintCell(issuer.Bank.Name, ports.CellOptions{Width: 2, Height: 0.25, Align: ports.AlignCenter})

	// check number
	s.SetPosition(7, 0.25)
	s.UseFont(ports.FontRegular, 12)
	s.PrintCell(strconv.Itoa(check.Number), ports.CellOptions{Width: 1, Height: 0.25})
}

// FillCheck writes a payment into the fields laid out by PrintCheckLabels.
// The amount is spelled out before anything is drawn so an invalid amount leaves the slot untouched.
func FillCheck(check domain.Check, s ports.Surface, payment domain.Payment) error {
	written, err := payment.WrittenAmount()
	if err != nil {
		return fmt.Errorf("check %d: %w", check.Number, err)
	}

	// payee
	s.SetPosition(0.875, 1.2)
	s.UseFont(ports.FontRegular, 12)
	s.PrintCell(payment.Payee, ports.CellOptions{Width: 5.5, Height: 0.25})

	// date
	s.SetPosition(6.875, 0.75)
	s.UseFont(ports.FontRegular, 12)
	s.PrintCell(payment.FormattedDate(), ports.CellOptions{Width: 1.125, Height: 0.25})

	// numeric amount
	s.SetPosition(6.875, 1.2)
	s.UseFont(ports.FontRegular, 12)
	s.PrintCell(payment.FormattedAmount(), ports.CellOptions{Width: 1.125, Height: 0.25})

	// written amount
	s.SetPosition(0.375, 1.575)
	s.UseFont(ports.FontRegular, 12)
	s.PrintCell(written, ports.CellOptions{Width: 6.6, Height: 0.25, Pad: true})

	if payment.HasMemo() {
		s.SetPosition(0.875, 2.3)
		s.UseFont(ports.FontRegular, 10)
		s.PrintCell(payment.Memo, ports.CellOptions{Width: 2, Height: 0.25})
	}

	return nil
}
