// Command normalizer reads a CREATE TABLE schema and a dependency
// declaration, decomposes the schema to a requested normal form, and
// prints the resulting tables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/mjmoore-dev/dbnormalizer/internal/config"
	"github.com/mjmoore-dev/dbnormalizer/pkg/emitter"
	"github.com/mjmoore-dev/dbnormalizer/pkg/logger"
	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
	"github.com/mjmoore-dev/dbnormalizer/pkg/monitor"
	"github.com/mjmoore-dev/dbnormalizer/pkg/normalizer"
	"github.com/mjmoore-dev/dbnormalizer/pkg/parser"
	"github.com/mjmoore-dev/dbnormalizer/pkg/plan"
)

var traceAnalyzer = plan.NewAnalyzer()

// printTrace prints a decomposition trace followed by the diagnostics
// the analyzer surfaces about it (rule fan-out, already-satisfied runs).
func printTrace(trace *plan.Trace) {
	fmt.Print(trace.Text())
	for _, issue := range traceAnalyzer.Analyze(trace) {
		fmt.Printf("[%s] %s\n", issue.Severity, issue.Description)
	}
}

const banner = `
 _   _  ___  ____  __  __    _    _     ___ ________ ____
 | \ | |/ _ \|  _ \|  \/  |  / \  | |   |_ _|__  / ____|  _ \
 |  \| | | | | |_) | |\/| | / _ \ | |    | |  / /|  _| | |_) |
 | |\  | |_| |  _ <| |  | |/ ___ \| |___ | | / /_| |___|  _ <
 |_| \_|\___/|_| \_\_|  |_/_/   \_\_____|___/____|_____|_| \_\

 schema + dependency declaration -> decomposed tables
`

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outputFormat = flag.String("output", "", "Output format: sql, json (default from config, sql if unset)")
		explain      = flag.Bool("explain", false, "Print a decomposition trace alongside the result")
		highest      = flag.Bool("highest", false, "Report the highest normal form the input already satisfies, without decomposing")
		watch        = flag.Bool("watch", false, "Re-run the pipeline whenever the schema or dependency file changes")
		configPath   = flag.String("config", "", "Configuration file path")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		showHelp     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *showHelp {
		fmt.Print(banner)
		showUsage()
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	logger.Configure(cfg.Logging.Level)

	if *outputFormat != "" {
		cfg.Output.Format = *outputFormat
	}
	if cfg.Normalizer.ReportHighestForm {
		*highest = true
	}

	args := flag.Args()
	if len(args) < 2 {
		showUsage()
		return 1
	}

	schemaPath, depsPath := args[0], args[1]
	form := cfg.Normalizer.DefaultForm
	if len(args) >= 3 {
		form = args[2]
	}

	level, ok := normalizer.ParseLevel(form)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unrecognized normal form %q (want one of 1,2,3,B,4,5)\n", form)
		return 2
	}

	logger.Infof("normalizing %s + %s to %s", schemaPath, depsPath, level)

	if *watch {
		return runWatch(schemaPath, depsPath, level, *explain, cfg)
	}

	table, deps, err := parseInputs(schemaPath, depsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *highest {
		h := normalizer.HighestForm(table, deps)
		fmt.Printf("highest satisfied form: %s\n", h)
	}

	if *explain {
		tables, trace := normalizer.Explain(table, deps, level)
		printTrace(trace)
		printResult(tables, cfg.Output.Format)
		return 0
	}

	tables, err := normalizer.Normalize(table, deps, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(tables, cfg.Output.Format)
	return 0
}

func parseInputs(schemaPath, depsPath string) (*model.Table, *model.DependencyManager, error) {
	schemaSrc, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	depsSrc, err := os.ReadFile(depsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dependency file: %w", err)
	}

	sp, err := parser.NewSchemaParser(string(schemaSrc))
	if err != nil {
		return nil, nil, err
	}
	table, err := sp.ParseTable()
	if err != nil {
		return nil, nil, err
	}

	dp, err := parser.NewDependencyParser(string(depsSrc), table)
	if err != nil {
		return nil, nil, err
	}
	deps, err := dp.ParseManager()
	if err != nil {
		return nil, nil, err
	}

	return table, deps, nil
}

func printResult(tables []*model.Table, format string) {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(tables)
	default:
		fmt.Println(emitter.Tables(tables))
	}
}

func runWatch(schemaPath, depsPath string, level normalizer.Level, explain bool, cfg *config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interval := time.Duration(cfg.Watch.PollIntervalMs) * time.Millisecond
	w := monitor.NewFilePairWatcher(schemaPath, depsPath, interval)
	changes, errs := w.Start(ctx)

	diagnostics := monitor.NewDiagnosticManager()
	diagnostics.AddRule(monitor.RunFailedRule{})
	diagnostics.AddRule(monitor.AlreadySatisfiedRule{})
	diagnostics.AddRule(monitor.KeyFabricatedRule{})
	diagnostics.AddHandler(func(d monitor.Diagnostic) {
		logger.Infof("[%s] %s", d.Level, d.Message)
	})

	proc := monitor.NewProcessor(func() monitor.RunResult {
		table, deps, err := parseInputs(schemaPath, depsPath)
		if err != nil {
			return monitor.RunResult{Err: err}
		}
		if explain {
			tables, trace := normalizer.Explain(table, deps, level)
			return monitor.RunResult{Tables: tables, Trace: trace}
		}
		tables, err := normalizer.Normalize(table, deps, level)
		if err != nil {
			return monitor.RunResult{Err: err}
		}
		return monitor.RunResult{Tables: tables}
	})
	proc.SetHandler(func(result monitor.RunResult) {
		diagnostics.Evaluate(result)
		if result.Err != nil {
			fmt.Fprintln(os.Stderr, result.Err)
			return
		}
		if result.Trace != nil {
			printTrace(result.Trace)
		}
		printResult(result.Tables, cfg.Output.Format)
		fmt.Println(proc.GetStatistics().GetSnapshot())
	})

	go func() {
		for err := range errs {
			logger.Errorf("watch: %v", err)
		}
	}()

	proc.Process(ctx, changes)
	return 0
}

func showUsage() {
	fmt.Println("Usage:")
	fmt.Println("  normalizer [flags] <schema-path> <deps-path> [form]")
	fmt.Println()
	fmt.Println("  form is one of 1,2,3,B,4,5 (default from config, 3NF if unset)")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Exit codes: 0 success, 1 parse/validation failure, 2 unrecognized form")
}
