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

package generator

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/converter"
	"github.com/sol2clarity/sol2clarity/parser"
)

func generateContract(t *testing.T, code string) string {
	t.Helper()

	program, err := parser.ParseProgram(code)
	require.NoError(t, err)
	require.Len(t, program.Contracts, 1)

	contract, err := converter.ConvertContract(program.Contracts[0])
	require.NoError(t, err)

	return GenerateContract(contract)
}

func TestContractFileName(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "token-a.clar", ContractFileName("TokenA"))
	assert.Equal(t, "counter.clar", ContractFileName("Counter"))
	assert.Equal(t, "simple-token.clar", ContractFileName("SimpleToken"))
}

func TestGenerateContract(t *testing.T) {

	t.Parallel()

	code := `
        contract SimpleToken {
            uint256 public totalSupply = 1000;
            mapping(address => uint256) public balances;

            event Transfer(address indexed from, address indexed to, uint256 amount);

            function balanceOf(address owner) public view returns (uint256) {
                return balances[owner];
            }

            function transfer(address to, uint256 amount) public returns (bool) {
                balances[to] = amount;
                emit Transfer(msg.sender, to, amount);
                return true;
            }
        }
    `

	expected := `;; Contract: SimpleToken
;; Auto-generated Clarity contract from Solidity source

;; @desc Stores the total-supply value
;; @access public
(define-data-var total-supply uint u1000)

;; @desc Function get-total-supply
;; @returns response
(define-read-only (get-total-supply)
  (ok (var-get total-supply)))

;; @desc Map storing balances values
;; @access public
(define-map balances principal uint)

;; @desc Function get-balances
;; @returns response
(define-read-only (get-balances (key principal))
  (ok (map-get? balances key)))

;; @desc Event: transfer
;; @fields (indexed) from: principal, (indexed) to: principal, amount: uint

;; @desc Function balance-of
;; @returns response
(define-read-only (balance-of (owner principal))
  (ok (map-get? balances owner)))

;; @desc Function transfer
;; @returns response
(define-public (transfer (to principal) (amount uint))
  (begin
    (map-set balances to amount)
    (print {event: "transfer", from: tx-sender, to: to, amount: amount})
    (ok true)))
`

	assert.Equal(t, expected, generateContract(t, code))
}

func TestGenerateConstant(t *testing.T) {

	t.Parallel()

	contract := &clarity.Contract{
		Name: "Capped",
		Declarations: []clarity.Declaration{
			&clarity.Constant{
				Name:  "MAX_SUPPLY",
				Value: &clarity.UintLiteral{Value: big.NewInt(100)},
			},
		},
	}

	assert.Equal(t,
		`;; Contract: Capped
;; Auto-generated Clarity contract from Solidity source

;; @desc Constant value for MAX_SUPPLY
(define-constant MAX_SUPPLY u100)
`,
		GenerateContract(contract),
	)
}

func TestGenerateNestedMap(t *testing.T) {

	t.Parallel()

	code := `
        contract Allowances {
            mapping(address => mapping(address => uint256)) public allowances;

            function allowance(address owner, address spender) public view returns (uint256) {
                return allowances[owner][spender];
            }
        }
    `

	expected := `;; Contract: Allowances
;; Auto-generated Clarity contract from Solidity source

;; @desc Map storing allowances values
;; @access public
(define-map allowances {owner: principal, spender: principal} uint)

;; @desc Function get-allowances
;; @returns response
(define-read-only (get-allowances (key {owner: principal, spender: principal}))
  (ok (map-get? allowances key)))

;; @desc Function allowance
;; @returns response
(define-read-only (allowance (owner principal) (spender principal))
  (ok (map-get? allowances {owner: owner, spender: spender})))
`

	assert.Equal(t, expected, generateContract(t, code))
}

func TestGenerateDeterminism(t *testing.T) {

	t.Parallel()

	code := `
        contract Counter {
            uint256 public count;
            mapping(address => bool) public active;

            event Changed(uint256 value);

            function increment() public {
                count = count + 1;
                emit Changed(count);
            }
        }
    `

	first := generateContract(t, code)

	for range 10 {
		assert.Equal(t, first, generateContract(t, code))
	}
}
