package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"permitdesk/internal/normalizer"
	"permitdesk/internal/payment"
	"permitdesk/internal/platform/config"
	"permitdesk/internal/registry"
	"permitdesk/internal/vehicle"
	"permitdesk/pkg/domain"
)

// main wires the normalizer facade for ad-hoc checks from the command line.
// Business logic lives in the internal packages; this stays a thin
// composition root.
func main() {
	var (
		kindFlag   = flag.String("kind", "", "permit kind: cg_permit | temporary_commercial | temporary_passenger | national_part_a | national_part_b")
		fromFlag   = flag.String("from", "", "valid-from date, DD-MM-YYYY")
		plateFlag  = flag.String("plate", "", "vehicle registration number")
		feeFlag    = flag.String("fee", "0", "total fee")
		paidFlag   = flag.String("paid", "0", "amount paid")
		todayFlag  = flag.String("today", "", "override today's date, DD-MM-YYYY (for what-if checks)")
		lookupFlag = flag.String("lookup", "", "look up owner records by partial plate in the demo registry")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.FromEnv()

	if *lookupFlag != "" {
		lookup(logger, cfg, *lookupFlag)
		return
	}

	kind, err := domain.ParsePermitKind(*kindFlag)
	if err != nil {
		fatalf(logger, "invalid -kind: %v", err)
	}

	today := domain.FromTime(time.Now().UTC())
	if *todayFlag != "" {
		today, err = domain.ParseDate(*todayFlag)
		if err != nil {
			fatalf(logger, "invalid -today: %v", err)
		}
	}

	n := normalizer.New(
		normalizer.WithLogger(logger),
		normalizer.WithThresholdOverrides(cfg.ThresholdOverrides()),
	)

	ledger, _ := n.ApplyLedgerChange(payment.FieldTotalFee, *feeFlag, payment.Ledger{})
	ledger, exceeds := n.ApplyLedgerChange(payment.FieldPaid, *paidFlag, ledger)

	record, err := n.AssembleRecord(*plateFlag, *fromFlag, kind, ledger)
	if err != nil {
		fatalf(logger, "cannot assemble record: %v", err)
	}

	num := vehicle.Parse(record.VehicleNumber)
	fmt.Printf("vehicle     %s (%s %s, series %s, serial %s)\n",
		num.Raw(), num.StateName(), num.DistrictCode(), num.Series(), num.Serial())
	fmt.Printf("valid from  %s\n", record.ValidFrom)
	fmt.Printf("valid to    %s\n", record.ValidTo)
	fmt.Printf("severity    %s (as of %s)\n", n.Classify(record.ValidTo, kind, today), today)
	fmt.Printf("renewable   %v\n", n.IsRenewalEligible(record.ValidTo, kind, today))
	fmt.Printf("fee         total %s, paid %s, balance %s\n",
		record.TotalFee, record.Paid, record.Balance)
	if exceeds {
		fmt.Println("note        paid amount exceeded the total fee and was clamped")
	}
}

// lookup queries the demo registry through the caching decorator, the same
// composition a UI backend would use against the real registry client.
func lookup(logger *zap.Logger, cfg config.Settings, partial string) {
	client := registry.NewCachingClient(demoRegistry(), cfg.RegistryCacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := client.Search(ctx, partial)
	if err != nil {
		fatalf(logger, "registry lookup: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("no matching vehicles")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  %s, %s (chassis %s, engine %s, %d/%d kg)\n",
			rec.PlateNumber, rec.OwnerName, rec.Address,
			rec.ChassisNumber, rec.EngineNumber,
			rec.UnladenWeightKg, rec.GrossWeightKg)
	}
}

func demoRegistry() registry.Client {
	return registry.MockClient{
		Latency: 50 * time.Millisecond,
		Records: []registry.OwnerRecord{
			{
				PlateNumber:     "CG04AA1234",
				OwnerName:       "Ramesh Verma",
				Address:         "Shankar Nagar, Raipur",
				ChassisNumber:   "MA3EYD32S00345771",
				EngineNumber:    "G12BN456789",
				UnladenWeightKg: 1080,
				GrossWeightKg:   1480,
				Contact:         "ramesh.verma@example.in",
			},
			{
				PlateNumber:     "CG04AB7777",
				OwnerName:       "Sunita Sahu",
				Address:         "Civil Lines, Raipur",
				ChassisNumber:   "MAT445119PZK12876",
				EngineNumber:    "497TCIC45123",
				UnladenWeightKg: 5400,
				GrossWeightKg:   16200,
				Contact:         "sunita.sahu@example.in",
			},
			{
				PlateNumber:     "MH12DE1433",
				OwnerName:       "Arun Kulkarni",
				Address:         "Kothrud, Pune",
				ChassisNumber:   "MBLHA10AWGHJ04521",
				EngineNumber:    "HA10ENGHJ08831",
				UnladenWeightKg: 980,
				GrossWeightKg:   1350,
				Contact:         "arun.kulkarni@example.in",
			},
		},
	}
}

func fatalf(logger *zap.Logger, format string, args ...any) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
