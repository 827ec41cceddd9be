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

// Package transpiler is the pipeline facade:
// source text in, one generated output unit per contract out.
package transpiler

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sol2clarity/sol2clarity/converter"
	"github.com/sol2clarity/sol2clarity/generator"
	"github.com/sol2clarity/sol2clarity/parser"
)

// Output is one generated output unit.
type Output struct {
	ContractName string
	FileName     string
	Code         string
}

// Transpile parses the given source and converts and generates
// every contract it declares.
//
// Contracts share no state, so they are converted in parallel;
// results are collected in source order.
// The first failing contract aborts the whole input.
func Transpile(code string) ([]Output, error) {
	program, err := parser.ParseProgram(code)
	if err != nil {
		return nil, err
	}

	log.WithField("contracts", len(program.Contracts)).
		Debug("parsed program")

	outputs := make([]Output, len(program.Contracts))

	var g errgroup.Group

	for i, declaration := range program.Contracts {
		g.Go(func() error {
			contract, err := converter.ConvertContract(declaration)
			if err != nil {
				return err
			}

			code := generator.GenerateContract(contract)

			log.WithFields(log.Fields{
				"contract":     contract.Name,
				"declarations": len(contract.Declarations),
			}).Debug("converted contract")

			outputs[i] = Output{
				ContractName: contract.Name,
				FileName:     generator.ContractFileName(contract.Name),
				Code:         code,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}
