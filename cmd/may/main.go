// cmd/may/main.go demonstrates the kernel end to end. It builds
// expressions directly through constructors rather than parsing text --
// spec.md §6 treats the infix parser as an external collaborator this
// kernel does not implement.
package main

import (
	"flag"
	"fmt"
	"os"

	"may"
)

func main() {
	demo := flag.String("demo", "all", "which demo to run: sum|product|power|gcd|expand|karatsuba|partfrac|all")
	flag.Parse()

	k := may.New()
	demos := map[string]func(*may.Kernel){
		"sum":      demoSum,
		"product":  demoProduct,
		"power":    demoPower,
		"gcd":      demoGCD,
		"expand":   demoExpand,
		"karatsuba": demoKaratsuba,
		"partfrac": demoPartfrac,
	}

	if *demo == "all" {
		for _, name := range []string{"sum", "product", "power", "gcd", "expand", "karatsuba", "partfrac"} {
			fmt.Printf("--- %s ---\n", name)
			demos[name](k)
		}
		return
	}
	fn, ok := demos[*demo]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q\n", *demo)
		os.Exit(1)
	}
	fn(k)
}

func demoSum(k *may.Kernel) {
	x := may.Sym("x", may.Real)
	// x + x + 2 -> 2 + 2*x
	expr := may.Sum(x, x, may.Int(2))
	fmt.Println(may.Sprint(k.Eval(expr)))
}

func demoProduct(k *may.Kernel) {
	x := may.Sym("x", may.Real)
	// x^(1 + 1/2): the exponent folds to 3/2; with a symbolic base the
	// Power is held as x^(3/2), not split into x * x^(1/2)
	half := may.Factor(may.Int(1), may.Power(may.Int(2), may.Int(-1)))
	expr := may.Power(x, may.Sum(may.Int(1), half))
	fmt.Println(may.Sprint(k.Eval(expr)))
}

func demoPower(k *may.Kernel) {
	// 4^(3/2) -> 8
	exp := may.Factor(may.Int(3), may.Power(may.Int(2), may.Int(-1)))
	expr := may.Power(may.Int(4), exp)
	fmt.Println(may.Sprint(k.Eval(expr)))
}

func demoGCD(k *may.Kernel) {
	x := may.Sym("x", may.Real)
	// gcd(x^2-1, x^2+2x+1) -> x+1 (up to sign/content)
	a := k.Eval(may.Sum(may.Power(x, may.Int(2)), may.Factor(may.Int(-1), may.Int(1))))
	b := k.Eval(may.Sum(may.Power(x, may.Int(2)), may.Factor(may.Int(2), x), may.Int(1)))
	g := k.GCD(a, b)
	fmt.Println(may.Sprint(g))
}

func demoExpand(k *may.Kernel) {
	x, y := may.Sym("x", may.Real), may.Sym("y", may.Real)
	// (x+y+1)^3
	base := k.Eval(may.Sum(x, y, may.Int(1)))
	expr := may.Power(base, may.Int(3))
	fmt.Println(may.Sprint(k.Expand(expr)))
}

func demoKaratsuba(k *may.Kernel) {
	x, y := may.Sym("x", may.Real), may.Sym("y", may.Real)
	base := k.Eval(may.Sum(x, y, may.Int(1)))
	a := k.Expand(may.Power(base, may.Int(4)))
	result := k.Karatsuba(a, a, []may.Node{x, y})
	fmt.Println(may.Sprint(result))
}

func demoPartfrac(k *may.Kernel) {
	x := may.Sym("x", may.Real)
	d1 := k.Eval(may.Sum(x, may.Int(-1)))
	d2 := k.Eval(may.Sum(x, may.Int(2)))
	denom := k.Eval(may.Product(d1, d2))
	result := k.Partfrac(may.Int(1), denom, x)
	fmt.Println(may.Sprint(result))
}
