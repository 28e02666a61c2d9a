package eval_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfadams/eval"
)

func TestEvalPrec(t *testing.T) {
	p, err := eval.Parse("e; exp 1; log e; 1+2*3; 2^10; 8-3-2")
	require.NoError(t, err)
	rs, err := p.EvalPrec(200)
	require.NoError(t, err)
	require.Len(t, rs, 6)

	// The seeded e re-reads its 22-digit spelling, not the float64.
	want, _, err := big.ParseFloat("2.7182818284590452353603", 10, 200, big.ToNearestEven)
	require.NoError(t, err)
	assert.Zero(t, rs[0].Cmp(want), "e: want %g, got %g", want, rs[0])
	f, _ := rs[0].Float64()
	assert.Equal(t, math.E, f)

	f, _ = rs[1].Float64()
	assert.InDelta(t, math.E, f, 1e-12, "exp 1")
	f, _ = rs[2].Float64()
	assert.InDelta(t, 1, f, 1e-12, "log e")

	assert.Zero(t, rs[3].Cmp(big.NewFloat(7)), "1+2*3: got %g", rs[3])
	f, _ = rs[4].Float64()
	assert.InEpsilon(t, 1024, f, 1e-12, "2^10")
	assert.Zero(t, rs[5].Cmp(big.NewFloat(3)), "8-3-2: got %g", rs[5])
}

func TestEvalPrecConstants(t *testing.T) {
	// Constants re-read their source spelling at the requested
	// precision, so digits beyond float64 survive.
	p, err := eval.Parse("1.00000000000000000000001 - 1")
	require.NoError(t, err)
	rs, err := p.EvalPrec(200)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Positive(t, rs[0].Sign(), "difference should survive at 200 bits, got %g", rs[0])

	rs64 := p.Eval()
	assert.Zero(t, rs64[0], "difference should vanish in float64")
}

func TestEvalPrecTrig(t *testing.T) {
	p, err := eval.Parse("sin 1")
	require.NoError(t, err)
	rs, err := p.EvalPrec(64)
	require.Error(t, err)
	assert.Nil(t, rs)
	var pe *eval.PrecisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "sin", pe.Func)
}

func TestEvalPrecDomain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		fn   string
	}{
		{"div-zero", "0/0", "/"},
		{"pow-neg", "(0-1)^0.5", "^"},
		{"log-neg", "log(0-1)", "log"},
		{"log-zero", "log 0", "log"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := eval.Parse(c.src)
			require.NoError(t, err)
			rs, err := p.EvalPrec(64)
			require.Error(t, err, "%q should be outside the big.Float domain", c.src)
			assert.Nil(t, rs)
			var de *eval.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, c.fn, de.Func)
		})
	}
}
