//go:build go1.18
// +build go1.18

package eval_test

import (
	"testing"

	"github.com/jdfadams/eval"
)

func FuzzParse(f *testing.F) {
	f.Add("2^-3^2")
	f.Add("sin cos 2; e^pi")
	f.Add("(1+2")
	f.Add("12abc")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := eval.Parse(s)
		if err != nil {
			// Failure output must always format.
			_ = eval.Report(err, s)
			return
		}
		p.Eval()
	})
}
