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

package clarity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionString(t *testing.T) {

	t.Parallel()

	tests := []struct {
		expression Expression
		expected   string
	}{
		{
			&UintLiteral{Value: big.NewInt(42)},
			"u42",
		},
		{
			&BoolLiteral{Value: true},
			"true",
		},
		{
			&StringLiteral{Value: "MyToken"},
			`"MyToken"`,
		},
		{
			&Reference{Name: "tx-sender"},
			"tx-sender",
		},
		{
			&VarGet{Name: "count"},
			"(var-get count)",
		},
		{
			&VarSet{
				Name:  "count",
				Value: &UintLiteral{Value: big.NewInt(1)},
			},
			"(var-set count u1)",
		},
		{
			&MapGet{
				Map: "balances",
				Key: &Reference{Name: "owner"},
			},
			"(map-get? balances owner)",
		},
		{
			&MapSet{
				Map:   "balances",
				Key:   &Reference{Name: "owner"},
				Value: &UintLiteral{Value: big.NewInt(5)},
			},
			"(map-set balances owner u5)",
		},
		{
			&Application{
				Function: "+",
				Arguments: []Expression{
					&Reference{Name: "a"},
					&Reference{Name: "b"},
				},
			},
			"(+ a b)",
		},
		{
			&Ok{Value: &BoolLiteral{Value: true}},
			"(ok true)",
		},
		{
			&PrintExpression{
				Value: &TupleExpression{
					Fields: []TupleField{
						{
							Name:  "event",
							Value: &StringLiteral{Value: "transfer"},
						},
						{
							Name:  "amount",
							Value: &Reference{Name: "amount"},
						},
					},
				},
			},
			`(print {event: "transfer", amount: amount})`,
		},
		{
			&Begin{
				Expressions: []Expression{
					&VarSet{
						Name:  "count",
						Value: &UintLiteral{Value: new(big.Int)},
					},
					&Ok{Value: &BoolLiteral{Value: true}},
				},
			},
			"(begin\n" +
				"  (var-set count u0)\n" +
				"  (ok true))",
		},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, test.expression.String())
		})
	}
}

func TestQuoteString(t *testing.T) {

	t.Parallel()

	assert.Equal(t, `""`, QuoteString(""))
	assert.Equal(t, `"abc"`, QuoteString("abc"))
	assert.Equal(t, `"a\"b"`, QuoteString(`a"b`))
	assert.Equal(t, `"a\\b"`, QuoteString(`a\b`))
}

func TestMapKeyType(t *testing.T) {

	t.Parallel()

	t.Run("single key field", func(t *testing.T) {
		t.Parallel()

		m := &Map{
			Name: "balances",
			KeyFields: []KeyField{
				{Name: "owner", Type: TypePrincipal},
			},
			ValueType: TypeUint,
		}

		assert.Equal(t, TypePrincipal, m.KeyType())
		assert.Equal(t,
			"(define-map balances principal uint)",
			m.String(),
		)
	})

	t.Run("multiple key fields", func(t *testing.T) {
		t.Parallel()

		m := &Map{
			Name: "allowances",
			KeyFields: []KeyField{
				{Name: "owner", Type: TypePrincipal},
				{Name: "spender", Type: TypePrincipal},
			},
			ValueType: TypeUint,
		}

		assert.Equal(t,
			"{owner: principal, spender: principal}",
			m.KeyType().String(),
		)
		assert.Equal(t,
			"(define-map allowances {owner: principal, spender: principal} uint)",
			m.String(),
		)
	})
}

func TestFunctionString(t *testing.T) {

	t.Parallel()

	function := &Function{
		Name: "transfer",
		Kind: FunctionKindPublic,
		Parameters: []*Parameter{
			{Name: "to", Type: TypePrincipal},
			{Name: "amount", Type: TypeUint},
		},
		Body: &Ok{Value: &BoolLiteral{Value: true}},
	}

	assert.Equal(t,
		"(define-public (transfer (to principal) (amount uint))\n"+
			"  (ok true))",
		function.String(),
	)
}

func TestTypeDefaultValue(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "u0", TypeUint.DefaultValue().String())
	assert.Equal(t, "false", TypeBool.DefaultValue().String())
	assert.Equal(t, "tx-sender", TypePrincipal.DefaultValue().String())
	assert.Equal(t, `""`, TypeStringASCII.DefaultValue().String())
}
