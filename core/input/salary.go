// Package input gathers a validated salary from an interactive reader.
package input

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/width"

	"github.com/dotpep/calc-tax-salary-kz/core/tax"
	"github.com/dotpep/calc-tax-salary-kz/core/ui"
	"github.com/dotpep/calc-tax-salary-kz/internal/errors"
)

// User-facing texts
const (
	Prompt             = "Ваша зарплата: "
	NonNumericMessage  = "Type Error! Напишите сумму (целое число) вашей зарплаты."
	NonPositiveMessage = "Invalid input! Зарплата должна быть положительным числом."
)

// wholeNumber is an optionally signed run of digits, with single underscores
// allowed between digits as in "1_000_000".
var wholeNumber = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParseSalary validates one line of user input. Full-width digits and signs
// are folded to ASCII first, so "５００" reads as 500.
func ParseSalary(raw string) (tax.Salary, error) {
	text := width.Narrow.String(strings.TrimSpace(raw))
	if !wholeNumber.MatchString(text) {
		return 0, errors.NonNumeric(raw, strconv.ErrSyntax)
	}

	value, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
	if err != nil {
		return 0, errors.NonNumeric(raw, err)
	}
	if value <= 0 {
		return 0, errors.NonPositive(value)
	}
	return tax.Salary(value), nil
}

// Prompter asks for a salary until it gets a valid one
type Prompter struct {
	scanner *bufio.Scanner
	ui      *ui.Writer
	logger  *zap.Logger
}

// NewPrompter creates a prompter reading from in and writing prompts to w
func NewPrompter(in io.Reader, w *ui.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{
		scanner: bufio.NewScanner(in),
		ui:      w,
		logger:  logger,
	}
}

// ReadSalary prompts until a positive integer is entered. Invalid entries
// are reported and the prompt repeats with no retry limit. It only fails
// when the input ends or ctx is done.
func (p *Prompter) ReadSalary(ctx context.Context) (tax.Salary, error) {
	for attempt := 1; ; attempt++ {
		p.ui.Print("%s", Prompt)

		line, err := p.readLine(ctx)
		if err != nil {
			if err == io.EOF {
				return 0, errors.Input("input ended before a valid salary was entered", err).
					WithContext("attempts", attempt)
			}
			return 0, err
		}

		salary, err := ParseSalary(line)
		switch {
		case err == nil:
			p.logger.Debug("salary accepted", zap.Int64("salary", int64(salary)), zap.Int("attempt", attempt))
			return salary, nil
		case errors.IsType(err, errors.TypeNonNumericInput):
			p.ui.Error("%s", NonNumericMessage)
		case errors.IsType(err, errors.TypeNonPositiveInput):
			p.ui.Error("%s", NonPositiveMessage)
		default:
			return 0, err
		}
		p.logger.Debug("salary rejected", zap.Error(err), zap.Int("attempt", attempt))
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine blocks on the scanner in a goroutine so a cancelled ctx can
// interrupt a prompt that is waiting on the terminal.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		if p.scanner.Scan() {
			ch <- lineResult{line: p.scanner.Text()}
			return
		}
		err := p.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		ch <- lineResult{err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
