package domain

import "strings"

// Bank identifies the drawee bank printed on every check
type Bank struct {
	Name          string `json:"name" yaml:"name"`
	RoutingNumber string `json:"routing_number" yaml:"routing_number"`
}

// Issuer is the account holder writing the checks.
// An Issuer is shared read-only by every check of a run.
type Issuer struct {
	Name          string `json:"name" yaml:"name"`
	Details       string `json:"details" yaml:"details"`
	AccountNumber string `json:"account_number" yaml:"account_number"`
	Bank          Bank   `json:"bank" yaml:"bank"`
}

// Validate checks the fields required to print a MICR line and check header
func (i *Issuer) Validate() error {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return NewMissingFieldError("issuer.name")
	case strings.TrimSpace(i.AccountNumber) == "":
		return NewMissingFieldError("issuer.account_number")
	case strings.TrimSpace(i.Bank.RoutingNumber) == "":
		return NewMissingFieldError("issuer.bank.routing_number")
	}
	return nil
}

// Check is one physical check face with its sequential number
type Check struct {
	Issuer *Issuer
	Number int
}

// NewChecks allocates count checks numbered contiguously from start
func NewChecks(issuer *Issuer, count, start int) []Check {
	checks := make([]Check, 0, count)
	for i := 0; i < count; i++ {
		checks = append(checks, Check{Issuer: issuer, Number: start + i})
	}
	return checks
}
