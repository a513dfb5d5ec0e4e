package centrality

import "math"

// Normalize turns an accumulated sum S over k samples on an n-vertex graph
// into every supported estimate:
//
//	Raw              = n·S / k
//	FallingFactorial = S / ((n-1)(n-2)·k)
//	ProductForm      = S / ∏_{i=1..k} (n-i)
//
// k == 0 yields exact zeros under every convention. Otherwise an undefined
// convention is NaN even when S == 0: ProductForm once k ≥ n (a factor is
// zero), FallingFactorial for n < 3. The product is evaluated in log space as
// lnΓ(n) − lnΓ(n−k).
//
// Complexity: O(1).
func Normalize(sum float64, samples uint64, n int) Estimates {
	if samples == 0 {
		return Estimates{}
	}
	k := float64(samples)
	nf := float64(n)

	est := Estimates{
		Raw:              nf * sum / k,
		FallingFactorial: math.NaN(),
		ProductForm:      productForm(sum, samples, n),
	}
	if denom := (nf - 1) * (nf - 2) * k; denom > 0 {
		est.FallingFactorial = sum / denom
	}

	return est
}

// productForm computes S / ∏_{i=1..k}(n-i) without forming the product.
func productForm(sum float64, samples uint64, n int) float64 {
	if n < 1 || samples >= uint64(n) {
		return math.NaN()
	}
	if sum == 0 {
		return 0
	}
	lgN, _ := math.Lgamma(float64(n))
	lgNK, _ := math.Lgamma(float64(n) - float64(samples))

	return math.Exp(math.Log(sum) - (lgN - lgNK))
}
