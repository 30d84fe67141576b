package main

import (
	"flag"
	"fmt"
	"os"

	"risk-reward/internal/analysis"
	"risk-reward/internal/config"
	"risk-reward/internal/form"
	"risk-reward/internal/riskreward"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calc":
		cmdCalc(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --avg 0.008 --stop 0.006 --target 0.012 --tick-size 0.001 --lots 10 --tick-value 1 --total-lots 10")
	fmt.Println("  cli calc --config examples/config.yaml --breakdown")
	fmt.Println("  cli presets --dir examples/presets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --cost and --rebate are optional and default to 0")
	fmt.Println("  - --preset seeds values from an instrument preset file; explicit flags override it")
}

func cmdCalc(args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	avg := fs.String("avg", "", "Average entry price ($)")
	stop := fs.String("stop", "", "Max against price / stop loss ($)")
	target := fs.String("target", "", "Target price ($)")
	tickSize := fs.String("tick-size", "", "Minimum price increment ($)")
	lots := fs.String("lots", "", "Number of lots")
	tickValue := fs.String("tick-value", "", "Monetary value per tick ($)")
	totalLots := fs.String("total-lots", "", "Total lots for entry/exit")
	cost := fs.String("cost", "", "Transaction cost per lot ($, default 0)")
	rebate := fs.String("rebate", "", "Rebate per lot ($, default 0)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	presetPath := fs.String("preset", "", "Path to instrument preset YAML")
	breakdown := fs.Bool("breakdown", false, "Print the detailed component breakdown")
	_ = fs.Parse(args)

	// Base values come from preset then config; explicit flags override.
	var raw form.RawInputs
	if *presetPath != "" {
		p, err := config.LoadPreset(*presetPath)
		if err != nil {
			fmt.Printf("failed to load preset: %v\n", err)
			os.Exit(1)
		}
		raw = p.Inputs.ToRaw()
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
			os.Exit(1)
		}
		raw = overlay(raw, cfg.Inputs.ToRaw())
	}
	raw = overlay(raw, form.RawInputs{
		AvgPrice:           *avg,
		MaxAgainstPrice:    *stop,
		TargetPrice:        *target,
		TickSize:           *tickSize,
		NumLots:            *lots,
		TickValue:          *tickValue,
		TotalLotsEntryExit: *totalLots,
		CostPerLot:         *cost,
		RebatePerLot:       *rebate,
	})

	in, err := form.Parse(raw)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	b := riskreward.ComputeBreakdown(in)
	risk, reward := b.TotalRisk, b.TotalReward

	fmt.Printf("Position: %s\n\n", form.Describe(in))
	fmt.Printf("%-20s %s\n", "Total Risk:", riskreward.FormatCurrency(risk))
	fmt.Printf("%-20s %s\n", "Total Reward:", riskreward.FormatCurrency(reward))
	fmt.Printf("%-20s %s (%s)\n", "Risk:Reward Ratio:", analysis.FormatRatio(risk, reward), analysis.DeltaLabel(risk, reward))

	ratio, _ := analysis.Ratio(risk, reward)
	fmt.Printf("\n%s\n", analysis.Classify(risk, reward).Message(ratio))

	if pct, ok := riskreward.ProfitPercent(risk, reward); ok {
		fmt.Printf("Profit Potential: %.1f%% of risk\n", pct)
	}
	if pct, ok := riskreward.RiskPercentOfPosition(risk, in.AvgPrice, in.NumLots); ok {
		fmt.Printf("Risk as %% of Position: %.2f%%\n", pct)
	}

	if *breakdown {
		fmt.Printf("\n%-26s %-14s %-14s\n", "component", "risk", "reward")
		printRow := func(name, riskCol, rewardCol string) {
			fmt.Printf("%-26s %-14s %-14s\n", name, riskCol, rewardCol)
		}
		fc := riskreward.FormatCurrency
		printRow("Price Movement (Risk)", fc(b.RiskFromPrice), "-")
		printRow("Price Movement (Reward)", "-", fc(b.RewardFromPrice))
		printRow("Transaction Costs", fc(b.TransactionCost), fc(-b.TransactionCost))
		printRow("Rebate Benefits", fc(-b.RebateBenefit), fc(b.RebateBenefit))
		printRow("Net Risk", fc(b.TotalRisk), "-")
		printRow("Net Reward", "-", fc(b.TotalReward))
	}
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	dir := fs.String("dir", "examples/presets", "Directory of instrument preset YAMLs")
	_ = fs.Parse(args)

	presets, err := config.ListPresets(*dir)
	if err != nil {
		fmt.Printf("failed to read presets: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-10s %-12s %-12s %-36s\n", "name", "tick size", "tick value", "description")
	for _, p := range presets {
		fmt.Printf("%-10s %-12g %-12g %-36s\n", p.Name, p.Inputs.TickSize, p.Inputs.TickValue, p.Description)
	}
}

// overlay replaces base fields with non-empty override fields.
func overlay(base, override form.RawInputs) form.RawInputs {
	pick := func(b, o string) string {
		if o != "" {
			return o
		}
		return b
	}
	return form.RawInputs{
		AvgPrice:           pick(base.AvgPrice, override.AvgPrice),
		MaxAgainstPrice:    pick(base.MaxAgainstPrice, override.MaxAgainstPrice),
		TargetPrice:        pick(base.TargetPrice, override.TargetPrice),
		TickSize:           pick(base.TickSize, override.TickSize),
		NumLots:            pick(base.NumLots, override.NumLots),
		TickValue:          pick(base.TickValue, override.TickValue),
		TotalLotsEntryExit: pick(base.TotalLotsEntryExit, override.TotalLotsEntryExit),
		CostPerLot:         pick(base.CostPerLot, override.CostPerLot),
		RebatePerLot:       pick(base.RebatePerLot, override.RebatePerLot),
	}
}
