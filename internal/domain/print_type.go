package domain

import (
	"fmt"
	"strings"
)

// PrintType selects the pre-printed layers drawn on each check face.
// Layers combine freely; PrintNone draws only the payment fields.
type PrintType uint8

const (
	PrintMICR PrintType = 1 << iota
	PrintLabels
	PrintInformation

	PrintNone PrintType = 0
	PrintAll            = PrintMICR | PrintLabels | PrintInformation
)

var printTypeNames = []struct {
	flag PrintType
	name string
}{
	{PrintMICR, "micr"},
	{PrintLabels, "labels"},
	{PrintInformation, "information"},
}

// Has reports whether every layer of flag is enabled
func (t PrintType) Has(flag PrintType) bool {
	return t&flag == flag
}

func (t PrintType) String() string {
	var names []string
	for _, n := range printTypeNames {
		if t.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParsePrintType combines layer names ("micr", "labels", "information", "all", "none")
func ParsePrintType(names []string) (PrintType, error) {
	var t PrintType
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "all":
			t |= PrintAll
			continue
		case "none", "":
			continue
		}

		found := false
		for _, n := range printTypeNames {
			if n.name == name {
				t |= n.flag
				found = true
				break
			}
		}
		if !found {
			return PrintNone, NewDomainError(ErrorCodeValidationFailed, fmt.Sprintf("unknown print layer %q", raw)).
				WithDetail("field", "print")
		}
	}
	return t, nil
}

// EmptyChecks decides what happens to the unused slots of the last sheet
type EmptyChecks string

const (
	// EmptyChecksPrint fills the last sheet with blank checks
	EmptyChecksPrint EmptyChecks = "print"
	// EmptyChecksBlank prints exactly one check per payment and leaves the rest of the sheet empty
	EmptyChecksBlank EmptyChecks = "blank"
)

// ChecksPerPage is the number of check faces on one Letter sheet
const ChecksPerPage = 3

// ParseEmptyChecks converts a policy name; empty selects EmptyChecksPrint
func ParseEmptyChecks(name string) (EmptyChecks, error) {
	switch EmptyChecks(strings.ToLower(strings.TrimSpace(name))) {
	case "", EmptyChecksPrint:
		return EmptyChecksPrint, nil
	case EmptyChecksBlank:
		return EmptyChecksBlank, nil
	}
	return "", NewDomainError(ErrorCodeValidationFailed, fmt.Sprintf("unknown empty checks policy %q", name)).
		WithDetail("field", "empty_checks")
}

// CheckCount returns how many check faces to print for the given number of payments
func (e EmptyChecks) CheckCount(payments int) int {
	if e == EmptyChecksBlank {
		return payments
	}
	return (payments + ChecksPerPage - 1) / ChecksPerPage * ChecksPerPage
}
