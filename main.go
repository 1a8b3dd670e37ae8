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

package main

import (
	"os"

	"github.com/magneticio/vamp-run-ranker/analyzer"
	"github.com/magneticio/vamp-run-ranker/analyzer/configurator"
	"github.com/magneticio/vampkubistcli/logging"
	"github.com/spf13/viper"
)

func main() {
	configurator.BindEnv()

	// stdout carries the report only
	logging.Init(os.Stderr, os.Stderr)
	configurator.InitViperConfig(".", "ranker-config")
	if len(os.Args) > 1 {
		viper.Set("input", os.Args[1])
	}

	config := configurator.New()
	logging.Verbose = config.IsVerbose()

	a, err := analyzer.NewAnalyzer(config, os.Stdout)
	if err != nil {
		logging.Error("unable to start analysis: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		logging.Error("analysis of %v failed: %v\n", a.Input(), err)
		os.Exit(1)
	}
}
