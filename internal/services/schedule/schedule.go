package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/pkg/observability"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MaxPayments bounds the number of payments one schedule may hold
const MaxPayments = 10000

// FixedRequest asks for Count payments of the same amount, one period apart
type FixedRequest struct {
	StartDate time.Time
	Amount    decimal.Decimal
	Payee     string
	Memo      string
	Period    domain.Period
	Count     int
}

// DistributionRequest asks for Total to be paid out in checks of Amount, one period apart
type DistributionRequest struct {
	StartDate time.Time
	Total     decimal.Decimal
	Amount    decimal.Decimal
	Payee     string
	Memo      string
	Period    domain.Period
	// FoldLast adds a leftover smaller than Amount to the last check instead of issuing one more
	FoldLast bool
}

// Schedule is an ordered list of payments built from one or more requests.
// A failed request leaves the schedule unchanged.
type Schedule struct {
	logger   *zap.Logger
	payments []domain.Payment
}

// New creates an empty schedule
func New(logger *zap.Logger) *Schedule {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Schedule{logger: logger}
}

// AddPayments appends req.Count payments starting at req.StartDate
func (s *Schedule) AddPayments(req FixedRequest) error {
	if err := validatePayee(req.Payee); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return domain.NewAmountError("amount", "check amount must be greater than zero").
			WithDetail("amount", req.Amount.String())
	}
	if req.Count < 0 {
		return domain.NewDomainError(domain.ErrorCodeValidationFailed, "count must not be negative").
			WithDetail("field", "count")
	}
	period, err := domain.ParsePeriod(string(req.Period))
	if err != nil {
		return err
	}
	if err := s.checkCapacity(int64(req.Count)); err != nil {
		return err
	}

	for i := 0; i < req.Count; i++ {
		s.payments = append(s.payments, domain.Payment{
			Payee:  req.Payee,
			Amount: req.Amount,
			Date:   period.Advance(req.StartDate, i),
			Memo:   req.Memo,
		})
	}

	observability.RecordScheduled("fixed", req.Count)
	s.logger.Debug("Scheduled fixed payments",
		zap.String("payee", req.Payee),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.Int("count", req.Count),
		zap.String("period", string(period)),
	)
	return nil
}

// DistributePayment splits req.Total into checks of req.Amount plus, when Total is not
// a multiple of Amount, either one smaller check or a larger last check (FoldLast).
// The amounts of the generated payments always sum to req.Total.
func (s *Schedule) DistributePayment(req DistributionRequest) error {
	if !req.Amount.IsPositive() {
		return domain.NewAmountError("amount", "check amount must be greater than zero").
			WithDetail("amount", req.Amount.String())
	}
	if req.Total.IsNegative() {
		return domain.NewAmountError("total", "total amount must not be negative").
			WithDetail("total", req.Total.String())
	}
	if err := validatePayee(req.Payee); err != nil {
		return err
	}
	period, err := domain.ParsePeriod(string(req.Period))
	if err != nil {
		return err
	}

	whole, remainder := req.Total.QuoRem(req.Amount, 0)
	if whole.GreaterThan(decimal.NewFromInt(MaxPayments)) {
		return tooManyPayments(whole.Add(decimal.NewFromInt(int64(len(s.payments)))).String())
	}
	needed := whole.IntPart()
	if remainder.IsPositive() && !(req.FoldLast && needed > 0) {
		needed++
	}
	if err := s.checkCapacity(needed); err != nil {
		return err
	}
	count := int(whole.IntPart())

	added := make([]domain.Payment, 0, count+1)
	for i := 0; i < count; i++ {
		added = append(added, domain.Payment{
			Payee:  req.Payee,
			Amount: req.Amount,
			Date:   period.Advance(req.StartDate, i),
			Memo:   req.Memo,
		})
	}

	if remainder.IsPositive() {
		if req.FoldLast && count > 0 {
			last := len(added) - 1
			added[last] = added[last].WithAmount(added[last].Amount.Add(remainder))
		} else {
			added = append(added, domain.Payment{
				Payee:  req.Payee,
				Amount: remainder,
				Date:   period.Advance(req.StartDate, count),
				Memo:   req.Memo,
			})
		}
	}

	s.payments = append(s.payments, added...)

	observability.RecordScheduled("distributed", len(added))
	s.logger.Debug("Distributed payment",
		zap.String("payee", req.Payee),
		zap.String("total", req.Total.StringFixed(2)),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("remainder", remainder.StringFixed(2)),
		zap.Bool("fold_last", req.FoldLast),
		zap.Int("payments", len(added)),
	)
	return nil
}

// Payments returns a copy of the scheduled payments in order
func (s *Schedule) Payments() []domain.Payment {
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Len returns the number of scheduled payments
func (s *Schedule) Len() int {
	return len(s.payments)
}

// Total sums every scheduled amount
func (s *Schedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.payments {
		total = total.Add(p.Amount)
	}
	return total
}

func validatePayee(payee string) error {
	if strings.TrimSpace(payee) == "" {
		return domain.NewMissingFieldError("payee")
	}
	return nil
}

// checkCapacity rejects a request that would push the schedule past MaxPayments
func (s *Schedule) checkCapacity(added int64) error {
	if added > MaxPayments-int64(len(s.payments)) {
		return tooManyPayments(fmt.Sprint(int64(len(s.payments)) + added))
	}
	return nil
}

func tooManyPayments(n string) error {
	return domain.NewDomainError(domain.ErrorCodeValidationFailed,
		fmt.Sprintf("schedule would hold %s payments, limit is %d", n, MaxPayments)).
		WithDetail("field", "count").
		WithDetail("limit", MaxPayments)
}
