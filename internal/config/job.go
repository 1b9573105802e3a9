package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/services/schedule"
	"github.com/kevin07696/checkgen/pkg/timeutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ExampleJobYAML documents the job file format
const ExampleJobYAML = `# checkgen job
issuer:
  name: Acme Holdings LLC
  details: 100 Main Street, Springfield
  account_number: "000123456789"
  bank:
    name: First National Bank
    routing_number: "011000015"

starting_check_number: 1001

# print: fill the last sheet with blank checks; blank: one check per payment
empty_checks: print

# any of micr, labels, information (or all / none)
print: [all]

payments:
  # fixed: count checks of amount, one period apart
  - payee: Landlord
    amount: 1500.00
    start_date: 2024-01-31
    memo: Rent
    count: 12
    period: monthly
  # distributed: total paid in checks of amount
  - payee: Contractor
    total: 2500.00
    amount: 1000.00
    start_date: 2024-06-01
    period: biweekly
    fold_last: true
`

// Amount is a decimal read verbatim from YAML so "0.10" never goes through a float
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := domain.ParseAmount(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	a.Decimal = d
	return nil
}

// Date is a YYYY-MM-DD calendar date
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := timeutil.ParseDate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q, want YYYY-MM-DD", value.Line, value.Value)
	}
	d.Time = t
	return nil
}

// PaymentSpec is one entry of the payments list. Setting Total makes it a distribution.
type PaymentSpec struct {
	Total     *Amount `yaml:"total,omitempty"`
	Count     *int    `yaml:"count,omitempty"`
	StartDate Date    `yaml:"start_date"`
	Amount    Amount  `yaml:"amount"`
	Payee     string  `yaml:"payee"`
	Memo      string  `yaml:"memo,omitempty"`
	Period    string  `yaml:"period,omitempty"`
	FoldLast  bool    `yaml:"fold_last,omitempty"`
}

// IsDistribution reports whether the entry splits a total across checks
func (p PaymentSpec) IsDistribution() bool {
	return p.Total != nil
}

// Job models a checkgen job file
type Job struct {
	Issuer              domain.Issuer `yaml:"issuer"`
	EmptyChecks         string        `yaml:"empty_checks,omitempty"`
	Print               []string      `yaml:"print,omitempty"`
	Payments            []PaymentSpec `yaml:"payments"`
	StartingCheckNumber int           `yaml:"starting_check_number,omitempty"`
}

// PaymentScheduler receives the payment requests of a job
type PaymentScheduler interface {
	AddPayments(req schedule.FixedRequest) error
	DistributePayment(req schedule.DistributionRequest) error
}

// LoadJob reads and validates a job file
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	job, err := ParseJob(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return job, nil
}

// ParseJob decodes and validates job YAML
func ParseJob(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, domain.WrapError(domain.ErrorCodeConfigInvalid, "parse job", err)
	}
	job.applyDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Job) applyDefaults() {
	j.EmptyChecks = strings.TrimSpace(j.EmptyChecks)
	if len(j.Print) == 0 {
		j.Print = []string{"all"}
	}
	for i := range j.Payments {
		if !j.Payments[i].IsDistribution() && j.Payments[i].Count == nil {
			one := 1
			j.Payments[i].Count = &one
		}
	}
}

// Validate checks everything that can be checked before scheduling
func (j *Job) Validate() error {
	if err := j.Issuer.Validate(); err != nil {
		return err
	}
	if j.StartingCheckNumber < 0 {
		return domain.NewDomainError(domain.ErrorCodeConfigInvalid, "starting_check_number must not be negative").
			WithDetail("field", "starting_check_number")
	}
	if _, err := domain.ParseEmptyChecks(j.EmptyChecks); err != nil {
		return err
	}
	if _, err := domain.ParsePrintType(j.Print); err != nil {
		return err
	}
	for i, p := range j.Payments {
		if _, err := domain.ParsePeriod(p.Period); err != nil {
			return fmt.Errorf("payments[%d]: %w", i, err)
		}
		if p.StartDate.IsZero() {
			return fmt.Errorf("payments[%d]: %w", i, domain.NewMissingFieldError("start_date"))
		}
	}
	return nil
}

// EmptyChecksPolicy returns the parsed empty_checks value
func (j *Job) EmptyChecksPolicy() domain.EmptyChecks {
	policy, _ := domain.ParseEmptyChecks(j.EmptyChecks)
	return policy
}

// PrintType returns the parsed print layers
func (j *Job) PrintType() domain.PrintType {
	t, _ := domain.ParsePrintType(j.Print)
	return t
}

// CheckNumber returns the job's starting check number, or fallback when unset
func (j *Job) CheckNumber(fallback int) int {
	if j.StartingCheckNumber > 0 {
		return j.StartingCheckNumber
	}
	return fallback
}

// Apply feeds every payment entry to target in file order
func (j *Job) Apply(target PaymentScheduler) error {
	for i, p := range j.Payments {
		period, err := domain.ParsePeriod(p.Period)
		if err != nil {
			return fmt.Errorf("payments[%d]: %w", i, err)
		}

		if p.IsDistribution() {
			err = target.DistributePayment(schedule.DistributionRequest{
				Payee:     p.Payee,
				Total:     p.Total.Decimal,
				Amount:    p.Amount.Decimal,
				StartDate: p.StartDate.Time,
				Memo:      p.Memo,
				Period:    period,
				FoldLast:  p.FoldLast,
			})
		} else {
			count := 1
			if p.Count != nil {
				count = *p.Count
			}
			err = target.AddPayments(schedule.FixedRequest{
				Payee:     p.Payee,
				Amount:    p.Amount.Decimal,
				StartDate: p.StartDate.Time,
				Memo:      p.Memo,
				Count:     count,
				Period:    period,
			})
		}
		if err != nil {
			return fmt.Errorf("payments[%d]: %w", i, err)
		}
	}
	return nil
}
