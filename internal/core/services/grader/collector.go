package grader

import "github.com/AlejoTorres2001/checker/internal/domain"

// Collector records test outcomes in execution order. It is the observer
// the execution driver notifies per case, and its list is the authoritative
// output consumed downstream; a record is never dropped or reordered.
type Collector struct {
	records []domain.OutcomeRecord
}

// NewCollector creates an empty outcome collector.
func NewCollector() *Collector {
	return &Collector{}
}

// AddSuccess records a passing test.
func (c *Collector) AddSuccess(test, description string) {
	c.records = append(c.records, domain.OutcomeRecord{
		Test:        test,
		Description: description,
		Result:      domain.StatusPassed,
		Reason:      domain.ReasonPassed,
	})
}

// AddFailure records a test whose assertion did not hold.
func (c *Collector) AddFailure(test, description, reason string) {
	c.records = append(c.records, domain.OutcomeRecord{
		Test:        test,
		Description: description,
		Result:      domain.StatusFailed,
		Reason:      reason,
	})
}

// AddError records a test that could not be exercised.
func (c *Collector) AddError(test, description, reason string) {
	c.records = append(c.records, domain.OutcomeRecord{
		Test:        test,
		Description: description,
		Result:      domain.StatusError,
		Reason:      reason,
	})
}

// Records returns the collected outcomes in execution order.
func (c *Collector) Records() []domain.OutcomeRecord {
	return c.records
}
