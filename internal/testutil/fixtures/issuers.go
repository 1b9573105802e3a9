package fixtures

import "github.com/kevin07696/checkgen/internal/domain"

// IssuerBuilder provides fluent API for building test issuers.
type IssuerBuilder struct {
	issuer *domain.Issuer
}

// NewIssuer creates a new issuer builder with sensible defaults.
func NewIssuer() *IssuerBuilder {
	return &IssuerBuilder{
		issuer: &domain.Issuer{
			Name:          "Acme Holdings LLC",
			Details:       "100 Main Street, Springfield",
			AccountNumber: "000123456789",
			Bank: domain.Bank{
				Name:          "First National Bank",
				RoutingNumber: "011000015",
			},
		},
	}
}

// WithName sets the issuer display name.
func (b *IssuerBuilder) WithName(name string) *IssuerBuilder {
	b.issuer.Name = name
	return b
}

// WithDetails sets the free-text line under the issuer name.
func (b *IssuerBuilder) WithDetails(details string) *IssuerBuilder {
	b.issuer.Details = details
	return b
}

// WithAccountNumber sets the account number printed on the MICR line.
func (b *IssuerBuilder) WithAccountNumber(account string) *IssuerBuilder {
	b.issuer.AccountNumber = account
	return b
}

// WithBank sets the drawee bank.
func (b *IssuerBuilder) WithBank(name, routing string) *IssuerBuilder {
	b.issuer.Bank = domain.Bank{Name: name, RoutingNumber: routing}
	return b
}

// Build returns the constructed issuer.
func (b *IssuerBuilder) Build() *domain.Issuer {
	return b.issuer
}
