// Copyright © 2018 Developer developer@vamp.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/magneticio/vamp-run-ranker/analyzer/configurator"
	"github.com/magneticio/vamp-run-ranker/analyzer/lineparser"
	"github.com/magneticio/vamp-run-ranker/analyzer/processor"
	"github.com/magneticio/vamp-run-ranker/analyzer/reporter"
	"github.com/magneticio/vamp-run-ranker/analyzer/statsengine"
	"github.com/magneticio/vampkubistcli/logging"
)

type (
	// Runner is the basic interface of a one shot analysis
	Runner interface {
		Input() string
		Run() error
	}

	// Analyzer ranks the configurations found in a batch run log.
	Analyzer struct {
		input  string
		format reporter.Format
		out    io.Writer
	}
)

var _ Runner = &Analyzer{}

// NewAnalyzer creates an analyzer writing its report to out
func NewAnalyzer(config *configurator.Config, out io.Writer) (*Analyzer, error) {
	format, err := configurator.ParseFormat(config.Format)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		input:  config.Input,
		format: format,
		out:    out,
	}, nil
}

// Input returns the path of the log being analyzed
func (a *Analyzer) Input() string {
	return a.input
}

// Run reads the whole input log and writes the report
func (a *Analyzer) Run() error {
	logging.Info("Reading runs from %v\n", a.input)
	f, err := os.Open(a.input)
	if err != nil {
		return fmt.Errorf("couldn't open file %v: %w", a.input, err)
	}
	defer f.Close()
	return Analyze(f, a.out, a.format)
}

// Analyze parses every line of r, aggregates the records per configuration,
// derives the statistics and reports them to w. Nothing is written unless
// every line parses.
func Analyze(r io.Reader, w io.Writer, format reporter.Format) error {
	records, err := lineparser.ParseAll(r)
	if err != nil {
		return fmt.Errorf("couldn't parse runs: %w", err)
	}
	logging.Info("Parsed %v records\n", len(records))

	data := processor.Aggregate(records)
	stats := statsengine.ProcessData(data)

	var b bytes.Buffer
	if err := reporter.Report(&b, stats, format); err != nil {
		return fmt.Errorf("couldn't render report: %w", err)
	}
	_, err = b.WriteTo(w)
	return err
}
