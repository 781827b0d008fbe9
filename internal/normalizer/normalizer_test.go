package normalizer_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"permitdesk/internal/normalizer"
	"permitdesk/internal/normalizer/metrics"
	"permitdesk/internal/payment"
	"permitdesk/internal/validity"
	"permitdesk/pkg/domain"
	dErrors "permitdesk/pkg/domain-errors"
)

func newNormalizer() *normalizer.Normalizer {
	return normalizer.New(
		normalizer.WithMetrics(metrics.With(prometheus.NewRegistry())),
	)
}

// A user types 2 4 0 1 2 4 into a CG-permit valid-from field with no prior
// deletes: after the 6th digit the field reads 24-01-2024 and the paired
// valid-to field reads 23-01-2029.
func TestIssueFormTypingScenario(t *testing.T) {
	n := newNormalizer()

	field := ""
	validTo := ""
	for _, key := range []string{"2", "4", "0", "1", "2", "4"} {
		raw := field + key
		field = n.HandleDateKeystroke(raw, field, false)
		validTo = n.RecomputeValidTo(field, domain.CGPermit, validTo)
	}

	assert.Equal(t, "24-01-2024", field)
	assert.Equal(t, "23-01-2029", validTo)
}

func TestRecomputeValidTo_KeepsPreviousWhileTyping(t *testing.T) {
	n := newNormalizer()

	// A complete date derives a fresh valid-to.
	got := n.RecomputeValidTo("15-01-2024", domain.NationalPartB, "")
	assert.Equal(t, "14-01-2025", got)

	// Backspacing into the year must not clear the derived field.
	got = n.RecomputeValidTo("15-01-202", domain.NationalPartB, got)
	assert.Equal(t, "14-01-2025", got)

	// An impossible date also keeps the previous value.
	got = n.RecomputeValidTo("31-02-2024", domain.NationalPartB, got)
	assert.Equal(t, "14-01-2025", got)
}

func TestRecomputeValidTo_UnknownKind(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "previous", n.RecomputeValidTo("15-01-2024", domain.PermitKind("bicycle"), "previous"))
}

func TestHandlePlateKeystrokeThenValidate(t *testing.T) {
	n := newNormalizer()

	field := ""
	for _, r := range "cg-04 aa 1234" {
		field = n.HandlePlateKeystroke(field, field+string(r))
	}
	assert.Equal(t, "CG04AA1234", field)

	res := n.ValidatePlate(field)
	assert.True(t, res.Valid)
}

func TestHandleDateBlur(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "24-01-2024", n.HandleDateBlur("24/01/24"))
}

func TestApplyLedgerChange_FlagsClamp(t *testing.T) {
	n := newNormalizer()
	current := payment.NewLedger(decimal.NewFromInt(10000))

	next, exceeds := n.ApplyLedgerChange(payment.FieldPaid, "15000", current)

	assert.True(t, exceeds)
	assert.True(t, next.Paid.Equal(decimal.NewFromInt(10000)))
	assert.True(t, next.Balance.IsZero())
}

func TestAssembleRecord(t *testing.T) {
	n := newNormalizer()

	ledger := payment.NewLedger(decimal.NewFromInt(10000))
	ledger, _ = payment.ApplyChange(payment.FieldPaid, "2500", ledger)

	rec, err := n.AssembleRecord("cg04aa1234", "15-01-2024", domain.NationalPartA, ledger)
	require.NoError(t, err)

	assert.Equal(t, "CG04AA1234", rec.VehicleNumber)
	assert.Equal(t, "15-01-2024", rec.ValidFrom)
	assert.Equal(t, "14-01-2029", rec.ValidTo)
	assert.True(t, rec.TotalFee.Equal(decimal.NewFromInt(10000)))
	assert.True(t, rec.Paid.Equal(decimal.NewFromInt(2500)))
	assert.True(t, rec.Balance.Equal(decimal.NewFromInt(7500)))
}

func TestAssembleRecord_NormalizesTwoDigitYearOnSave(t *testing.T) {
	n := newNormalizer()

	rec, err := n.AssembleRecord("CG04AA1234", "15/01/24", domain.NationalPartB, payment.Ledger{})
	require.NoError(t, err)

	assert.Equal(t, "15-01-2024", rec.ValidFrom)
	assert.Equal(t, "14-01-2025", rec.ValidTo)
}

func TestAssembleRecord_InvalidPlateBlocksSave(t *testing.T) {
	n := newNormalizer()

	_, err := n.AssembleRecord("CG4AA1234", "15-01-2024", domain.NationalPartA, payment.Ledger{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidFormat))
}

func TestAssembleRecord_IncompleteDate(t *testing.T) {
	n := newNormalizer()

	_, err := n.AssembleRecord("CG04AA1234", "15-01", domain.NationalPartA, payment.Ledger{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIncompleteInput))
}

func TestClassifyAndEligibilityThroughFacade(t *testing.T) {
	n := newNormalizer()
	today := domain.MustDate("17-12-2023")

	assert.Equal(t, validity.SeverityCritical, n.Classify("01-01-2024", domain.NationalPartB, today))
	assert.True(t, n.IsRenewalEligible("01-01-2024", domain.NationalPartB, today))
	assert.False(t, n.IsRenewalEligible("01-01-2024", domain.NationalPartA, domain.MustDate("01-06-2023")))
}

func TestWithThresholdOverrides(t *testing.T) {
	n := normalizer.New(
		normalizer.WithMetrics(metrics.With(prometheus.NewRegistry())),
		normalizer.WithThresholdOverrides(map[domain.PermitKind]validity.Thresholds{
			domain.NationalPartB: {CriticalDays: 30, WarningDays: 120},
		}),
	)

	today := domain.MustDate("01-01-2024")
	assert.Equal(t, validity.SeverityWarning, n.Classify("31-03-2024", domain.NationalPartB, today))
}

// Metrics are optional: a bare Normalizer must work with none attached.
func TestNormalizerWithoutMetrics(t *testing.T) {
	n := normalizer.New()

	assert.True(t, n.ValidatePlate("CG04AA1234").Valid)
	assert.Equal(t, "14-01-2025", n.RecomputeValidTo("15-01-2024", domain.NationalPartB, ""))
}
