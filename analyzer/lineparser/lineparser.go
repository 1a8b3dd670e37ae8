// Package lineparser recovers run records from the lines of a batch run log.
//
// A line has the form
//
//	PS_<population>/NG_<generations>/run_<run>.output:<outcome>
//
// where the outcome is either the literal SUCCESS or a run time given as a
// decimal float, optionally preceded by spaces.
package lineparser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magneticio/vamp-run-ranker/analyzer/models"
)

// maxLineLength bounds a single log line
const maxLineLength = 1024 * 1024

const successLiteral = "SUCCESS"

// ParseError describes a line that does not match the log grammar
type ParseError struct {
	LineNumber int
	Line       string
	Reason     string
}

func (e *ParseError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d: cannot parse %q: %s", e.LineNumber, e.Line, e.Reason)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Line, e.Reason)
}

// ParseAll parses every line of r and stops at the first line that fails
func ParseAll(r io.Reader) ([]models.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	records := make([]models.Record, 0)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		record, err := ParseLine(scanner.Text())
		if err != nil {
			if parseError, ok := err.(*ParseError); ok {
				parseError.LineNumber = lineNumber
			}
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", lineNumber+1, err)
	}
	return records, nil
}

// ParseLine parses a single log line into a record
func ParseLine(input string) (models.Record, error) {
	record, rest, err := line(input)
	if err != nil {
		return models.Record{}, &ParseError{Line: input, Reason: err.Error()}
	}
	if rest != "" {
		return models.Record{}, &ParseError{Line: input, Reason: fmt.Sprintf("unexpected trailing input %q", rest)}
	}
	return record, nil
}

func line(input string) (models.Record, string, error) {
	populationSize, numGenerations, runNumber, rest, err := path(input)
	if err != nil {
		return models.Record{}, input, err
	}
	rest, err = tag(":", rest)
	if err != nil {
		return models.Record{}, input, err
	}
	outcome, rest, err := entry(rest)
	if err != nil {
		return models.Record{}, input, err
	}
	return models.Record{
		PopulationSize: populationSize,
		NumGenerations: numGenerations,
		RunNumber:      runNumber,
		Outcome:        outcome,
	}, rest, nil
}

func path(input string) (populationSize, numGenerations, runNumber uint32, rest string, err error) {
	if populationSize, rest, err = preceded("PS_", input); err != nil {
		return
	}
	if numGenerations, rest, err = preceded("/NG_", rest); err != nil {
		return
	}
	if runNumber, rest, err = preceded("/run_", rest); err != nil {
		return
	}
	rest, err = tag(".output", rest)
	return
}

// entry tries the SUCCESS literal before a run time, the first match wins
func entry(input string) (models.Outcome, string, error) {
	if rest, err := tag(successLiteral, input); err == nil {
		return models.Outcome{Kind: models.Success}, rest, nil
	}
	value, rest, err := float(space0(input))
	if err != nil {
		return models.Outcome{}, input, fmt.Errorf("expected %s or a run time: %v", successLiteral, err)
	}
	return models.Outcome{Kind: models.RunTime, RunTime: value}, rest, nil
}

func tag(token string, input string) (string, error) {
	if !strings.HasPrefix(input, token) {
		return input, fmt.Errorf("expected %q at %q", token, input)
	}
	return input[len(token):], nil
}

func preceded(token string, input string) (uint32, string, error) {
	rest, err := tag(token, input)
	if err != nil {
		return 0, input, err
	}
	return unsigned(rest)
}

func unsigned(input string) (uint32, string, error) {
	end := digits(input)
	if end == 0 {
		return 0, input, fmt.Errorf("expected digits at %q", input)
	}
	value, err := strconv.ParseUint(input[:end], 10, 32)
	if err != nil {
		return 0, input, fmt.Errorf("invalid integer %q: %v", input[:end], err)
	}
	return uint32(value), input[end:], nil
}

func space0(input string) string {
	return strings.TrimLeft(input, " \t")
}

// float recognizes [+-]?(d+[.d*]|.d+)([eE][+-]?d+)? and parses it with
// single precision
func float(input string) (float32, string, error) {
	end := 0
	if end < len(input) && (input[end] == '+' || input[end] == '-') {
		end++
	}
	mantissa := digits(input[end:])
	end += mantissa
	if end < len(input) && input[end] == '.' {
		fraction := digits(input[end+1:])
		mantissa += fraction
		end += 1 + fraction
	}
	if mantissa == 0 {
		return 0, input, fmt.Errorf("expected a number at %q", input)
	}
	if end < len(input) && (input[end] == 'e' || input[end] == 'E') {
		exponent := end + 1
		if exponent < len(input) && (input[exponent] == '+' || input[exponent] == '-') {
			exponent++
		}
		if n := digits(input[exponent:]); n > 0 {
			end = exponent + n
		}
	}
	value, err := strconv.ParseFloat(input[:end], 32)
	if err != nil {
		return 0, input, fmt.Errorf("invalid number %q: %v", input[:end], err)
	}
	return float32(value), input[end:], nil
}

func digits(input string) int {
	n := 0
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}
	return n
}
