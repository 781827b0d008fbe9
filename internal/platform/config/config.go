package config

import (
	"os"
	"strconv"
	"time"

	"permitdesk/internal/validity"
	"permitdesk/pkg/domain"
)

// RegistryCacheTTL enforces retention for vehicle-registry lookup data.
var RegistryCacheTTL = 5 * time.Minute

// Settings captures the tunables of the normalizer library. The validity
// rules themselves are never configurable; only display-only warning windows
// and the lookup plumbing are.
type Settings struct {
	DebounceInterval time.Duration
	RegistryCacheTTL time.Duration

	// WarningDaysOverride adjusts the display-only warning window per kind.
	// Critical (renewal) windows are mandated and cannot be overridden.
	WarningDaysOverride map[domain.PermitKind]int
}

// FromEnv builds Settings from environment variables so composition roots
// stay lean.
func FromEnv() Settings {
	s := Settings{
		DebounceInterval: 500 * time.Millisecond,
		RegistryCacheTTL: RegistryCacheTTL,
	}

	if ms, ok := envInt("PERMITDESK_DEBOUNCE_MS"); ok && ms > 0 {
		s.DebounceInterval = time.Duration(ms) * time.Millisecond
	}
	if ttl := os.Getenv("PERMITDESK_REGISTRY_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			s.RegistryCacheTTL = d
		}
	}

	warn := map[string]domain.PermitKind{
		"PERMITDESK_WARNING_DAYS_TEMP_COMMERCIAL": domain.TemporaryCommercial,
		"PERMITDESK_WARNING_DAYS_TEMP_PASSENGER":  domain.TemporaryPassenger,
		"PERMITDESK_WARNING_DAYS_NATIONAL_A":      domain.NationalPartA,
		"PERMITDESK_WARNING_DAYS_NATIONAL_B":      domain.NationalPartB,
	}
	for env, kind := range warn {
		if days, ok := envInt(env); ok && days > 0 {
			if s.WarningDaysOverride == nil {
				s.WarningDaysOverride = make(map[domain.PermitKind]int)
			}
			s.WarningDaysOverride[kind] = days
		}
	}
	return s
}

// ThresholdOverrides merges the warning-day overrides with the mandated
// critical windows. Overrides at or below the critical window are dropped so
// the warning band can never swallow the renewal band.
func (s Settings) ThresholdOverrides() map[domain.PermitKind]validity.Thresholds {
	if len(s.WarningDaysOverride) == 0 {
		return nil
	}
	out := make(map[domain.PermitKind]validity.Thresholds, len(s.WarningDaysOverride))
	for kind, warn := range s.WarningDaysOverride {
		t, ok := validity.DefaultThresholdsFor(kind)
		if !ok || warn <= t.CriticalDays {
			continue
		}
		t.WarningDays = warn
		out[kind] = t
	}
	return out
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
