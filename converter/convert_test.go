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

package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/parser"
)

func convertContract(t *testing.T, code string) *clarity.Contract {
	t.Helper()

	program, err := parser.ParseProgram(code)
	require.NoError(t, err)
	require.Len(t, program.Contracts, 1)

	contract, err := ConvertContract(program.Contracts[0])
	require.NoError(t, err)
	return contract
}

func convertError(t *testing.T, code string) error {
	t.Helper()

	program, err := parser.ParseProgram(code)
	require.NoError(t, err)
	require.Len(t, program.Contracts, 1)

	_, err = ConvertContract(program.Contracts[0])
	require.Error(t, err)
	return err
}

func declarationStrings(contract *clarity.Contract) []string {
	strings := make([]string, 0, len(contract.Declarations))
	for _, declaration := range contract.Declarations {
		strings = append(strings, declaration.String())
	}
	return strings
}

func TestConvertDataVar(t *testing.T) {

	t.Parallel()

	t.Run("public with initial value", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Counter {
                uint256 public count = 5;
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-data-var count uint u5)",
				"(define-read-only (get-count)\n" +
					"  (ok (var-get count)))",
			},
			declarationStrings(contract),
		)
	})

	t.Run("private has no getter", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Counter {
                uint256 count;
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-data-var count uint u0)",
			},
			declarationStrings(contract),
		)
	})

	t.Run("external has no getter", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Vault {
                uint256 external reserve;
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-data-var reserve uint u0)",
			},
			declarationStrings(contract),
		)
	})

	t.Run("camel case name", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                uint256 public totalSupply;
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-data-var total-supply uint u0)",
				"(define-read-only (get-total-supply)\n" +
					"  (ok (var-get total-supply)))",
			},
			declarationStrings(contract),
		)
	})
}

func TestConvertDefaultValues(t *testing.T) {

	t.Parallel()

	tests := map[string]string{
		"uint256 x;": "(define-data-var x uint u0)",
		"bool x;":    "(define-data-var x bool false)",
		"address x;": "(define-data-var x principal tx-sender)",
		"string x;":  `(define-data-var x string-ascii "")`,
	}

	for variable, expected := range tests {
		t.Run(variable, func(t *testing.T) {
			t.Parallel()

			contract := convertContract(t, "contract C { "+variable+" }")

			require.Len(t, contract.Declarations, 1)
			assert.Equal(t, expected, contract.Declarations[0].String())
		})
	}
}

func TestConvertConstant(t *testing.T) {

	t.Parallel()

	contract := convertContract(t, `
        contract Token {
            uint256 public constant MAX_SUPPLY = 1000;
        }
    `)

	// constants keep their screaming-case name
	// and never synthesize a getter
	assert.Equal(t,
		[]string{
			"(define-constant MAX_SUPPLY u1000)",
		},
		declarationStrings(contract),
	)
}

func TestConvertMap(t *testing.T) {

	t.Parallel()

	t.Run("single key", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => uint256) public balances;

                function balanceOf(address owner) public view returns (uint256) {
                    return balances[owner];
                }
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-map balances principal uint)",
				"(define-read-only (get-balances (key principal))\n" +
					"  (ok (map-get? balances key)))",
				"(define-read-only (balance-of (owner principal))\n" +
					"  (ok (map-get? balances owner)))",
			},
			declarationStrings(contract),
		)
	})

	t.Run("nested keys use observed index names", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => mapping(address => uint256)) public allowances;

                function allowance(address owner, address spender) public view returns (uint256) {
                    return allowances[owner][spender];
                }
            }
        `)

		assert.Equal(t,
			"(define-map allowances {owner: principal, spender: principal} uint)",
			contract.Declarations[0].String(),
		)

		assert.Equal(t,
			"(define-read-only (get-allowances (key {owner: principal, spender: principal}))\n"+
				"  (ok (map-get? allowances key)))",
			contract.Declarations[1].String(),
		)
	})

	t.Run("three nested keys", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Registry {
                mapping(address => mapping(address => mapping(uint256 => bool))) public operators;

                function setOperator(address owner, address operator, uint256 id) public returns (bool) {
                    operators[owner][operator][id] = true;
                    return true;
                }
            }
        `)

		assert.Equal(t,
			"(define-map operators {owner: principal, operator: principal, id: uint} bool)",
			contract.Declarations[0].String(),
		)

		assert.Equal(t,
			"(define-read-only (get-operators (key {owner: principal, operator: principal, id: uint}))\n"+
				"  (ok (map-get? operators key)))",
			contract.Declarations[1].String(),
		)

		assert.Equal(t,
			"(define-public (set-operator (owner principal) (operator principal) (id uint))\n"+
				"  (begin\n"+
				"    (map-set operators {owner: owner, operator: operator, id: id} true)\n"+
				"    (ok true)))",
			contract.Declarations[2].String(),
		)
	})

	t.Run("unobserved key positions fall back to generated names", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => mapping(uint256 => bool)) approvals;
            }
        `)

		assert.Equal(t,
			[]string{
				"(define-map approvals {key-0: principal, key-1: uint} bool)",
			},
			declarationStrings(contract),
		)
	})

	t.Run("non-identifier index falls back for its position", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => mapping(address => uint256)) allowed;

                function approve(address spender, uint256 amount) public returns (bool) {
                    allowed[msg.sender][spender] = amount;
                    return true;
                }
            }
        `)

		assert.Equal(t,
			"(define-map allowed {key-0: principal, spender: principal} uint)",
			contract.Declarations[0].String(),
		)

		assert.Equal(t,
			"(define-public (approve (spender principal) (amount uint))\n"+
				"  (begin\n"+
				"    (map-set allowed {key-0: tx-sender, spender: spender} amount)\n"+
				"    (ok true)))",
			contract.Declarations[1].String(),
		)
	})

	t.Run("disagreeing index names fall back for their position", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => mapping(address => uint256)) allowed;

                function f(address a, address b) public {
                    allowed[a][b] = 1;
                    allowed[b][b] = 2;
                }
            }
        `)

		// position 0 saw both `a` and `b`, position 1 only `b`
		assert.Equal(t,
			"(define-map allowed {key-0: principal, b: principal} uint)",
			contract.Declarations[0].String(),
		)
	})

	t.Run("colliding derived names fall back for all positions", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => mapping(address => uint256)) allowed;

                function f(address who) public {
                    allowed[who][who] = 1;
                }
            }
        `)

		assert.Equal(t,
			"(define-map allowed {key-0: principal, key-1: principal} uint)",
			contract.Declarations[0].String(),
		)
	})
}

func TestConvertFunctionKinds(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name: "view becomes read-only",
			code: `
                contract C {
                    function f() public view returns (uint256) { return 1; }
                }
            `,
			expected: "(define-read-only (f)\n  (ok u1))",
		},
		{
			name: "pure becomes read-only",
			code: `
                contract C {
                    function f() public pure returns (uint256) { return 1; }
                }
            `,
			expected: "(define-read-only (f)\n  (ok u1))",
		},
		{
			name: "public becomes public",
			code: `
                contract C {
                    function f() public { }
                }
            `,
			expected: "(define-public (f)\n  (ok true))",
		},
		{
			name: "external becomes public",
			code: `
                contract C {
                    function f() external { }
                }
            `,
			expected: "(define-public (f)\n  (ok true))",
		},
		{
			name: "internal becomes private",
			code: `
                contract C {
                    function f() internal { }
                }
            `,
			expected: "(define-private (f)\n  (ok true))",
		},
		{
			name: "unspecified becomes private",
			code: `
                contract C {
                    function f() { }
                }
            `,
			expected: "(define-private (f)\n  (ok true))",
		},
		{
			name: "constructor becomes public init",
			code: `
                contract C {
                    uint256 total;
                    constructor(uint256 supply) {
                        total = supply;
                    }
                }
            `,
			expected: "(define-public (init (supply uint))\n" +
				"  (ok (var-set total supply)))",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			contract := convertContract(t, test.code)

			last := contract.Declarations[len(contract.Declarations)-1]
			assert.Equal(t, test.expected, last.String())
		})
	}
}

func TestConvertFunctionBody(t *testing.T) {

	t.Parallel()

	t.Run("final non-return statement is wrapped", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Counter {
                uint256 count;

                function increment() public {
                    count = count + 1;
                }
            }
        `)

		assert.Equal(t,
			"(define-public (increment)\n"+
				"  (ok (var-set count (+ (var-get count) u1))))",
			contract.Declarations[1].String(),
		)
	})

	t.Run("multiple statements sequence with begin", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Counter {
                uint256 count;

                function reset() public returns (bool) {
                    count = 0;
                    return true;
                }
            }
        `)

		assert.Equal(t,
			"(define-public (reset)\n"+
				"  (begin\n"+
				"    (var-set count u0)\n"+
				"    (ok true)))",
			contract.Declarations[1].String(),
		)
	})

	t.Run("final map store becomes the result", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract Token {
                mapping(address => uint256) balances;

                function transfer(address to, uint256 amount) public {
                    balances[msg.sender] = 0;
                    balances[to] = amount;
                }
            }
        `)

		assert.Equal(t,
			"(define-public (transfer (to principal) (amount uint))\n"+
				"  (begin\n"+
				"    (map-set balances tx-sender u0)\n"+
				"    (ok (map-set balances to amount))))",
			contract.Declarations[1].String(),
		)
	})

	t.Run("bare return", func(t *testing.T) {
		t.Parallel()

		contract := convertContract(t, `
            contract C {
                function f() public {
                    return;
                }
            }
        `)

		assert.Equal(t,
			"(define-public (f)\n  (ok true))",
			contract.Declarations[0].String(),
		)
	})
}

func TestConvertEmit(t *testing.T) {

	t.Parallel()

	contract := convertContract(t, `
        contract Token {
            event Transfer(address indexed from, address indexed to, uint256 amount);

            function transfer(address to, uint256 amount) public returns (bool) {
                emit Transfer(msg.sender, to, amount);
                return true;
            }
        }
    `)

	require.Len(t, contract.Declarations, 2)

	assert.Equal(t,
		"(define-public (transfer (to principal) (amount uint))\n"+
			"  (begin\n"+
			`    (print {event: "transfer", from: tx-sender, to: to, amount: amount})`+"\n"+
			"    (ok true)))",
		contract.Declarations[1].String(),
	)
}

func TestConvertIdentifierScoping(t *testing.T) {

	t.Parallel()

	// `value` is both a data-var and a parameter:
	// inside the function the parameter shadows the data-var

	contract := convertContract(t, `
        contract C {
            uint256 value;
            uint256 other;

            function f(uint256 value) public {
                other = value;
            }
        }
    `)

	assert.Equal(t,
		"(define-public (f (value uint))\n"+
			"  (ok (var-set other value)))",
		contract.Declarations[2].String(),
	)
}

func TestConvertConstantReference(t *testing.T) {

	t.Parallel()

	contract := convertContract(t, `
        contract Token {
            uint256 constant MAX = 100;

            function max() public view returns (uint256) {
                return MAX;
            }
        }
    `)

	assert.Equal(t,
		"(define-read-only (max)\n  (ok MAX))",
		contract.Declarations[1].String(),
	)
}

func TestConvertBinaryOperations(t *testing.T) {

	t.Parallel()

	tests := []struct {
		operator string
		expected string
	}{
		{"+", "(ok (+ a b))"},
		{"-", "(ok (- a b))"},
		{"*", "(ok (* a b))"},
		{"/", "(ok (/ a b))"},
		{"%", "(ok (mod a b))"},
		{"<", "(ok (< a b))"},
		{"<=", "(ok (<= a b))"},
		{">", "(ok (> a b))"},
		{">=", "(ok (>= a b))"},
		{"==", "(ok (is-eq a b))"},
		{"!=", "(ok (not (is-eq a b)))"},
		{"&&", "(ok (and a b))"},
		{"||", "(ok (or a b))"},
	}

	for _, test := range tests {
		t.Run(test.operator, func(t *testing.T) {
			t.Parallel()

			contract := convertContract(t, `
                contract C {
                    function f(uint256 a, uint256 b) public view returns (uint256) {
                        return a `+test.operator+` b;
                    }
                }
            `)

			assert.Equal(t,
				"(define-read-only (f (a uint) (b uint))\n"+
					"  "+test.expected+")",
				contract.Declarations[0].String(),
			)
		})
	}
}

func TestConvertFlatPrecedence(t *testing.T) {

	t.Parallel()

	contract := convertContract(t, `
        contract C {
            function f(uint256 a, uint256 b, uint256 c) public view returns (uint256) {
                return a + b * c;
            }
        }
    `)

	assert.Equal(t,
		"(define-read-only (f (a uint) (b uint) (c uint))\n"+
			"  (ok (* (+ a b) c)))",
		contract.Declarations[0].String(),
	)
}

func TestConvertErrors(t *testing.T) {

	t.Parallel()

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                unit256 x;
            }
        `)

		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "unit256", typeErr.Name)
		assert.EqualError(t, typeErr, "cannot convert type: `unit256`")
		assert.Equal(t, "did you mean `uint256`?", typeErr.SecondaryError())
	})

	t.Run("unknown type without close candidate", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                bytes x;
            }
        `)

		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "unknown type", typeErr.SecondaryError())
	})

	t.Run("assignment to parameter", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                function f(uint256 x) public {
                    x = 1;
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.EqualError(t, constructErr, "unsupported construct: assignment to `x`")
		assert.Equal(t,
			"only contract data variables can be assigned to",
			constructErr.SecondaryError(),
		)
	})

	t.Run("emit of undeclared event", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                function f() public {
                    emit Missing(1);
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.EqualError(t, constructErr,
			"unsupported construct: emit of undeclared event `Missing`")
	})

	t.Run("emit arity mismatch", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                event Changed(uint256 value);

                function f() public {
                    emit Changed(1, 2);
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.Equal(t,
			"event has 1 parameter(s), got 2 argument(s)",
			constructErr.SecondaryError(),
		)
	})

	t.Run("index count mismatch", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                mapping(address => mapping(address => uint256)) allowed;

                function f(address owner) public view returns (uint256) {
                    return allowed[owner];
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.Equal(t,
			"mapping has 2 key(s), got 1 index expression(s)",
			constructErr.SecondaryError(),
		)
	})

	t.Run("index access on non-mapping", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                uint256 x;

                function f() public view returns (uint256) {
                    return x[0];
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.EqualError(t, constructErr,
			"unsupported construct: index access on `x`")
	})

	t.Run("mapping used as a value", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                uint256 x;
                mapping(address => uint256) balances;

                function f() public {
                    x = balances;
                }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.EqualError(t, constructErr,
			"unsupported construct: mapping used as a value")
	})

	t.Run("mapping-typed parameter", func(t *testing.T) {
		t.Parallel()

		err := convertError(t, `
            contract C {
                function f(mapping(address => uint256) m) public { }
            }
        `)

		var constructErr *UnsupportedConstructError
		require.ErrorAs(t, err, &constructErr)
		assert.EqualError(t, constructErr,
			"unsupported construct: mapping-typed parameter")
	})
}
