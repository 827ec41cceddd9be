/*
 * Sol2Clarity - A Solidity to Clarity smart contract transpiler
 *
 * Copyright Sol2Clarity Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sol2clarity/sol2clarity/pretty"
	"github.com/sol2clarity/sol2clarity/transpiler"
)

const version = "0.1.0"

var outputDir string

var rootCmd = &cobra.Command{
	Use:           "sol2clarity <input-file>",
	Short:         "Transpile Solidity contracts to Clarity",
	Long:          "sol2clarity reads a Solidity source file and writes one generated Clarity contract file per contract declaration.",
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(
		&outputDir,
		"output",
		"o",
		".",
		"directory the generated files are written to",
	)

	if os.Getenv("SOL2CLARITY_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}
}

func run(_ *cobra.Command, args []string) error {
	inputFile := args[0]

	source, err := os.ReadFile(inputFile)
	if err != nil {
		err = fmt.Errorf("cannot read input file %s: %w", inputFile, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	outputs, err := transpiler.Transpile(string(source))
	if err != nil {
		printErr := pretty.NewErrorPrettyPrinter(os.Stderr, true).
			PrettyPrintError(err, inputFile, string(source))
		if printErr != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		err = fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	for _, output := range outputs {
		path := filepath.Join(outputDir, output.FileName)
		if err := os.WriteFile(path, []byte(output.Code), 0o644); err != nil {
			err = fmt.Errorf("cannot write output file %s: %w", path, err)
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		log.WithFields(log.Fields{
			"contract": output.ContractName,
			"file":     path,
		}).Debug("wrote contract")
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
