package eval_test

import (
	"fmt"

	"github.com/jdfadams/eval"
)

func ExampleParse() {
	p, err := eval.Parse("2^-3^2; 8-3-2; 2+2;3*3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p.String())
	for _, r := range p.Eval() {
		fmt.Printf("Evaluation: %g\n", r)
	}
	// Output:
	// (2^(-(3^2)));
	// ((8-3)-2);
	// (2+2);
	// (3*3);
	// Evaluation: 0.001953125
	// Evaluation: 3
	// Evaluation: 4
	// Evaluation: 9
}

func ExampleReport() {
	src := "2*(4+foo)"
	_, err := eval.Parse(src)
	if err != nil {
		fmt.Println(eval.Report(err, src))
	}
	// Output:
	// 9: unknown name: "foo"
	// )
	// ^
}

func ExampleWithVar() {
	rs, err := eval.EvalString("x^2 + x", eval.WithVar("x", 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%g\n", rs[0])
	// Output:
	// 12
}
