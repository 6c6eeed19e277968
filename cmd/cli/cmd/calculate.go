package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotpep/calc-tax-salary-kz/core/input"
	"github.com/dotpep/calc-tax-salary-kz/core/output"
	"github.com/dotpep/calc-tax-salary-kz/core/ui"
	"github.com/dotpep/calc-tax-salary-kz/internal/config"
	"github.com/dotpep/calc-tax-salary-kz/internal/logging"
)

const intro = "Я могу рассчитать налог для вашей зарплаты в Казахстане!"

func runCalculate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	opts := output.TextOptions{
		NoColor:   cfg.Output.NoColor || noColor,
		ShowSteps: cfg.Output.ShowSteps && !summaryOnly,
	}

	formatter, err := output.DefaultRegistry(opts).Lookup(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Keep stdout parseable when the report is machine-readable.
	var promptOut io.Writer = out
	if formatter.Format() != output.FormatText {
		promptOut = cmd.ErrOrStderr()
	}
	w := ui.NewWriter(promptOut, opts.NoColor)
	if verbose {
		w.SetVerbosity(2)
	}

	log := logging.Named("calculate")
	log.Debug("starting calculation", zap.String("format", string(formatter.Format())))

	w.Line("")
	w.Info("%s", intro)

	salary, err := input.NewPrompter(cmd.InOrStdin(), w, log).ReadSalary(ctx)
	if err != nil {
		return err
	}

	report := output.NewReport(salary, Version)
	w.Debug("calculation id: %s", report.Metadata.CalculationID)
	w.Debug("config: %s", configSource)
	log.Debug("calculation completed",
		zap.String("calculation_id", report.Metadata.CalculationID),
		zap.Int64("salary", int64(report.Salary)),
		zap.Stringer("net_salary", report.Components.NetSalary),
	)

	return formatter.Render(out, report)
}
