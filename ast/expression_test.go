/*
 * IndoScript - A small scripting language with Indonesian keywords
 *
 * Copyright The IndoScript Authors
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

package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbolent/prettier"
)

func TestNumberExpression_MarshalJSON(t *testing.T) {

	t.Parallel()

	expr := &NumberExpression{
		Literal: "4.5",
		Value:   4.5,
		Range: Range{
			StartPos: Position{Offset: 1, Line: 2, Column: 3},
			EndPos:   Position{Offset: 3, Line: 2, Column: 5},
		},
	}

	actual, err := json.Marshal(expr)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "NumberExpression",
            "Literal": "4.5",
            "Value": 4.5,
            "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
            "EndPos": {"Offset": 3, "Line": 2, "Column": 5}
        }
        `,
		string(actual),
	)
}

func TestNumberExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("literal", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t,
			"007",
			(&NumberExpression{Literal: "007", Value: 7}).String(),
		)
	})

	t.Run("no literal", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t,
			"0.25",
			(&NumberExpression{Value: 0.25}).String(),
		)
	})
}

func TestBoolExpression_Doc(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		prettier.Text("benar"),
		(&BoolExpression{Value: true}).Doc(),
	)

	assert.Equal(t,
		prettier.Text("salah"),
		(&BoolExpression{Value: false}).Doc(),
	)
}

func TestBoolExpression_MarshalJSON(t *testing.T) {

	t.Parallel()

	expr := &BoolExpression{
		Value: false,
		Range: Range{
			StartPos: Position{Offset: 1, Line: 2, Column: 3},
			EndPos:   Position{Offset: 4, Line: 5, Column: 6},
		},
	}

	actual, err := json.Marshal(expr)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "BoolExpression",
            "Value": false,
            "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
            "EndPos": {"Offset": 4, "Line": 5, "Column": 6}
        }
        `,
		string(actual),
	)
}

func TestStringExpression_String(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		`"halo dunia"`,
		(&StringExpression{Value: "halo dunia"}).String(),
	)
}

func TestIdentifierExpression_MarshalJSON(t *testing.T) {

	t.Parallel()

	expr := &IdentifierExpression{
		Identifier: Identifier{
			Identifier: "nilai",
			Pos:        Position{Offset: 1, Line: 2, Column: 3},
		},
	}

	actual, err := json.Marshal(expr)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "IdentifierExpression",
            "Identifier": {
                "Identifier": "nilai",
                "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
                "EndPos": {"Offset": 5, "Line": 2, "Column": 7}
            },
            "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
            "EndPos": {"Offset": 5, "Line": 2, "Column": 7}
        }
        `,
		string(actual),
	)
}

func TestArrayExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t,
			"[]",
			(&ArrayExpression{}).String(),
		)
	})

	t.Run("elements and spread", func(t *testing.T) {

		t.Parallel()

		expr := &ArrayExpression{
			Elements: []*ArrayElement{
				{
					Expression: &NumberExpression{Literal: "1", Value: 1},
				},
				{
					Expression: &StringExpression{Value: "a"},
				},
				{
					Expression: &IdentifierExpression{
						Identifier: Identifier{Identifier: "lain"},
					},
					Spread: true,
				},
			},
		}

		assert.Equal(t,
			`[1, "a", ...lain]`,
			expr.String(),
		)
	})
}

func TestArrayExpression_Walk(t *testing.T) {

	t.Parallel()

	one := &NumberExpression{Literal: "1", Value: 1}
	two := &NumberExpression{Literal: "2", Value: 2}

	expr := &ArrayExpression{
		Elements: []*ArrayElement{
			{Expression: one},
			{Expression: two, Spread: true},
		},
	}

	var children []Element
	expr.Walk(func(element Element) {
		children = append(children, element)
	})

	assert.Equal(t, []Element{one, two}, children)
}

func TestBinaryExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("simple", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationPlus,
			Left:      &NumberExpression{Literal: "1", Value: 1},
			Right:     &NumberExpression{Literal: "2", Value: 2},
		}

		assert.Equal(t, "1 + 2", expr.String())
	})

	t.Run("left-nested", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationMul,
			Left: &BinaryExpression{
				Operation: OperationPlus,
				Left:      &NumberExpression{Literal: "2", Value: 2},
				Right:     &NumberExpression{Literal: "3", Value: 3},
			},
			Right: &NumberExpression{Literal: "4", Value: 4},
		}

		assert.Equal(t, "2 + 3 * 4", expr.String())
	})

	t.Run("right-nested", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationMinus,
			Left:      &NumberExpression{Literal: "1", Value: 1},
			Right: &BinaryExpression{
				Operation: OperationMinus,
				Left:      &NumberExpression{Literal: "2", Value: 2},
				Right:     &NumberExpression{Literal: "3", Value: 3},
			},
		}

		assert.Equal(t, "1 - (2 - 3)", expr.String())
	})
}

func TestInvocationExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("no arguments", func(t *testing.T) {

		t.Parallel()

		expr := &InvocationExpression{
			InvokedExpression: &IdentifierExpression{
				Identifier: Identifier{Identifier: "sapa"},
			},
		}

		assert.Equal(t, "sapa()", expr.String())
	})

	t.Run("arguments", func(t *testing.T) {

		t.Parallel()

		expr := &InvocationExpression{
			InvokedExpression: &IdentifierExpression{
				Identifier: Identifier{Identifier: "tambah"},
			},
			Arguments: []Expression{
				&NumberExpression{Literal: "1", Value: 1},
				&BinaryExpression{
					Operation: OperationPlus,
					Left:      &NumberExpression{Literal: "2", Value: 2},
					Right:     &NumberExpression{Literal: "3", Value: 3},
				},
			},
		}

		assert.Equal(t, "tambah(1, (2 + 3))", expr.String())
	})
}

func TestMemberExpression_String(t *testing.T) {

	t.Parallel()

	expr := &MemberExpression{
		Expression: &IdentifierExpression{
			Identifier: Identifier{Identifier: "daftar"},
		},
		Identifier: Identifier{Identifier: "panjang"},
	}

	assert.Equal(t, "daftar.panjang", expr.String())
}

func TestMethodCallExpression_String(t *testing.T) {

	t.Parallel()

	expr := &MethodCallExpression{
		Expression: &IdentifierExpression{
			Identifier: Identifier{Identifier: "daftar"},
		},
		Identifier: Identifier{Identifier: "tambah"},
		Arguments: []Expression{
			&NumberExpression{Literal: "4", Value: 4},
		},
	}

	assert.Equal(t, "daftar.tambah(4)", expr.String())
}

func TestIndexExpression_String(t *testing.T) {

	t.Parallel()

	expr := &IndexExpression{
		TargetExpression: &IdentifierExpression{
			Identifier: Identifier{Identifier: "daftar"},
		},
		IndexingExpression: &NumberExpression{Literal: "0", Value: 0},
	}

	assert.Equal(t, "daftar[0]", expr.String())
}
