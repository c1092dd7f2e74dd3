// Command billsplit reads a bill document and prints who owes what.
//
//	billsplit -file bill.json -currency EUR -locale de-DE
//	cat bill.json | billsplit -json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/report"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("billsplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "bill JSON document (default: stdin)")
	currencyCode := fs.String("currency", "USD", "ISO 4217 currency code")
	locale := fs.String("locale", "en-US", "BCP 47 locale for number formatting")
	epsilon := fs.Float64("epsilon", calculator.DefaultEpsilon, "tolerance of the consistency check")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	asJSON := fs.Bool("json", false, "print the summary as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(stderr, logging.ParseLevel(*logLevel))

	data, err := readInput(*file, stdin)
	if err != nil {
		logger.Error("Failed to read bill", "file", *file, "error", err)
		return 1
	}
	bill, err := decodeInput(data)
	if err != nil {
		logger.Error("Failed to parse bill", "file", *file, "error", err)
		return 1
	}

	formatter, err := calculator.NewCurrencyFormatter(*currencyCode, *locale)
	if err != nil {
		logger.Error("Invalid formatting options", "error", err)
		return 1
	}

	summary := calculator.ComputeSummary(*bill)
	if !calculator.IsFinite(summary) {
		logger.Error("Bill totals overflow", "bill_id", bill.ID)
		return 1
	}
	rec := calculator.Reconcile(*bill, summary, *epsilon)
	rep := report.Build(*bill, summary, rec, formatter)
	logger.Debug("Computed summary",
		"bill_id", bill.ID,
		"people", len(summary.PersonTotals),
		"balanced", rec.Balanced,
	)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(api.SummaryResponse{Summary: summary, Reconciliation: rec, Report: rep})
	} else {
		err = report.WriteText(stdout, rep)
	}
	if err != nil {
		logger.Error("Failed to write output", "error", err)
		return 1
	}
	return 0
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

// persistedState is the browser snapshot layout: the bill nested under
// state.bill next to a version number.
type persistedState struct {
	State *struct {
		Bill *models.Bill `json:"bill"`
	} `json:"state"`
}

// decodeInput accepts a bare bill document or a browser snapshot.
func decodeInput(data []byte) (*models.Bill, error) {
	var snapshot persistedState
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode bill: %w", err)
	}
	if snapshot.State != nil {
		if snapshot.State.Bill == nil {
			return nil, errors.New("decode bill: snapshot has no bill")
		}
		return snapshot.State.Bill, nil
	}
	return storage.DecodeBill(data)
}
