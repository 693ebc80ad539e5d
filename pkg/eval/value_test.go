package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	testCases := []struct {
		val  Value
		want bool
	}{
		{Nil{}, false},
		{Bool{Val: false}, false},
		{Bool{Val: true}, true},
		{Num{Val: 0}, true},
		{Num{Val: math.NaN()}, true},
		{Str{Val: ""}, true},
		{Str{Val: "false"}, true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsTruthy(tc.val), "%#v", tc.val)
	}
}

func TestEqual(t *testing.T) {
	values := []Value{
		Nil{},
		Bool{Val: true},
		Bool{Val: false},
		Num{Val: 0},
		Num{Val: 1},
		Str{Val: ""},
		Str{Val: "1"},
	}

	for i, a := range values {
		// reflexive
		assert.True(t, Equal(a, a), "%#v", a)
		for j, b := range values {
			// symmetric, and distinct entries never compare equal
			assert.Equal(t, Equal(a, b), Equal(b, a), "%#v %#v", a, b)
			assert.Equal(t, i == j, Equal(a, b), "%#v %#v", a, b)
		}
	}

	assert.False(t, Equal(Num{Val: 1}, Str{Val: "1"}))
	assert.False(t, Equal(Num{Val: 0}, Bool{Val: false}))
	assert.False(t, Equal(Nil{}, Bool{Val: false}))
	assert.False(t, Equal(Str{Val: ""}, Nil{}))
	assert.True(t, Equal(Num{Val: 0}, Num{Val: math.Copysign(0, -1)}))
	assert.False(t, Equal(Num{Val: math.NaN()}, Num{Val: math.NaN()}))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "3", Stringify(Num{Val: 3}))
	assert.Equal(t, "2.5", Stringify(Num{Val: 2.5}))
	assert.Equal(t, "-0.125", Stringify(Num{Val: -0.125}))
	assert.Equal(t, "inf", Stringify(Num{Val: math.Inf(1)}))
	assert.Equal(t, "ab", Stringify(Str{Val: "ab"}))
	assert.Equal(t, "", Stringify(Str{Val: ""}))
	assert.Equal(t, "true", Stringify(Bool{Val: true}))
	assert.Equal(t, "false", Stringify(Bool{Val: false}))
	assert.Equal(t, "nil", Stringify(Nil{}))
}
