package validity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"permitdesk/internal/validity"
	"permitdesk/pkg/domain"
)

func TestComputeValidTo(t *testing.T) {
	tests := []struct {
		name      string
		validFrom string
		rule      domain.RuleKind
		want      string
	}{
		{"cg permit five years less one day", "15-01-2024", domain.FiveYearsLessOneDay, "14-01-2029"},
		{"part b one year less one day", "01-04-2024", domain.OneYearLessOneDay, "31-03-2025"},
		{"commercial three months", "10-11-2024", domain.ThreeMonths, "10-02-2025"},
		{"passenger four months from leap day", "29-02-2024", domain.FourMonths, "29-06-2024"},
		{"three months from month-end clamps", "30-11-2024", domain.ThreeMonths, "28-02-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validity.ComputeValidTo(tt.validFrom, tt.rule)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComputeValidTo_IncompleteInputYieldsNoDate(t *testing.T) {
	// Callers must keep the previous valid-to while the user is typing.
	for _, in := range []string{"", "15", "15-01", "15-01-20", "30-02-2024", "15-01-1899"} {
		_, ok := validity.ComputeValidTo(in, domain.FiveYearsLessOneDay)
		assert.False(t, ok, "input %q", in)
	}
}

func TestComputeValidTo_UnknownRule(t *testing.T) {
	_, ok := validity.ComputeValidTo("15-01-2024", domain.RuleKind("two_weeks"))
	assert.False(t, ok)
}

func TestDaysRemaining(t *testing.T) {
	today := domain.MustDate("15-01-2024")

	assert.Equal(t, 0, validity.DaysRemaining(domain.MustDate("15-01-2024"), today))
	assert.Equal(t, 7, validity.DaysRemaining(domain.MustDate("22-01-2024"), today))
	assert.Equal(t, -3, validity.DaysRemaining(domain.MustDate("12-01-2024"), today))
}

func TestClassify(t *testing.T) {
	th := validity.Thresholds{CriticalDays: 7, WarningDays: 14}

	tests := []struct {
		name string
		days int
		want validity.Severity
	}{
		{"negative is expired", -1, validity.SeverityExpired},
		{"expires today is critical", 0, validity.SeverityCritical},
		{"critical boundary inclusive", 7, validity.SeverityCritical},
		{"just past critical is warning", 8, validity.SeverityWarning},
		{"warning boundary inclusive", 14, validity.SeverityWarning},
		{"beyond warning is normal", 15, validity.SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validity.Classify(tt.days, th))
		})
	}
}

func TestIsRenewalEligible_PartBWindows(t *testing.T) {
	engine := validity.New(nil)
	validTo := "01-01-2024"

	t.Run("15 days out is inside the 30-day window", func(t *testing.T) {
		today := domain.MustDate("17-12-2023")
		assert.True(t, engine.IsRenewalEligible(validTo, domain.NationalPartB, today))
	})

	t.Run("45 days out is outside the window", func(t *testing.T) {
		today := domain.MustDate("17-11-2023")
		assert.False(t, engine.IsRenewalEligible(validTo, domain.NationalPartB, today))
	})

	t.Run("already expired is eligible", func(t *testing.T) {
		today := domain.MustDate("02-01-2024")
		assert.True(t, engine.IsRenewalEligible(validTo, domain.NationalPartB, today))
	})
}

func TestIsRenewalEligible_PerKindWindows(t *testing.T) {
	engine := validity.New(nil)
	validTo := "01-06-2024"

	tests := []struct {
		name  string
		kind  domain.PermitKind
		today string
		want  bool
	}{
		{"part a inside 90 days", domain.NationalPartA, "15-03-2024", true},
		{"part a outside 90 days", domain.NationalPartA, "01-01-2024", false},
		{"commercial inside 7 days", domain.TemporaryCommercial, "28-05-2024", true},
		{"commercial outside 7 days", domain.TemporaryCommercial, "15-05-2024", false},
		{"passenger inside 7 days", domain.TemporaryPassenger, "31-05-2024", true},
		{"cg permit is never auto-eligible", domain.CGPermit, "01-06-2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.IsRenewalEligible(validTo, tt.kind, domain.MustDate(tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRenewalEligible_UnparseableDate(t *testing.T) {
	engine := validity.New(nil)
	assert.False(t, engine.IsRenewalEligible("??-??-????", domain.NationalPartB, domain.MustDate("01-01-2024")))
	assert.False(t, engine.IsRenewalEligible("", domain.NationalPartB, domain.MustDate("01-01-2024")))
}

func TestClassifyPermit(t *testing.T) {
	engine := validity.New(nil)
	today := domain.MustDate("01-01-2024")

	t.Run("manual kinds classify normal", func(t *testing.T) {
		assert.Equal(t, validity.SeverityNormal, engine.ClassifyPermit("02-01-2024", domain.CGPermit, today))
	})

	t.Run("part b critical inside 30 days", func(t *testing.T) {
		assert.Equal(t, validity.SeverityCritical, engine.ClassifyPermit("20-01-2024", domain.NationalPartB, today))
	})

	t.Run("expired", func(t *testing.T) {
		assert.Equal(t, validity.SeverityExpired, engine.ClassifyPermit("31-12-2023", domain.NationalPartB, today))
	})
}

func TestThresholdOverridesOnlyAffectWarnings(t *testing.T) {
	engine := validity.New(map[domain.PermitKind]validity.Thresholds{
		domain.NationalPartB: {CriticalDays: 30, WarningDays: 120},
	})
	today := domain.MustDate("01-01-2024")

	// 90 days out: warning under the override, normal under defaults.
	assert.Equal(t, validity.SeverityWarning, engine.ClassifyPermit("31-03-2024", domain.NationalPartB, today))
	assert.Equal(t, validity.SeverityNormal, validity.New(nil).ClassifyPermit("31-03-2024", domain.NationalPartB, today))
}

func TestRuleFor(t *testing.T) {
	tests := []struct {
		kind domain.PermitKind
		rule domain.RuleKind
	}{
		{domain.CGPermit, domain.FiveYearsLessOneDay},
		{domain.TemporaryCommercial, domain.ThreeMonths},
		{domain.TemporaryPassenger, domain.FourMonths},
		{domain.NationalPartA, domain.FiveYearsLessOneDay},
		{domain.NationalPartB, domain.OneYearLessOneDay},
	}

	for _, tt := range tests {
		rule, ok := validity.RuleFor(tt.kind)
		require.True(t, ok)
		assert.Equal(t, tt.rule, rule)
	}

	_, ok := validity.RuleFor(domain.PermitKind("bicycle"))
	assert.False(t, ok)
}
