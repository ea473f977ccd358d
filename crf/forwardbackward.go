package crf

import "math"

// forwardBackward holds scaled forward-backward quantities for one sequence.
type forwardBackward struct {
	logZ      float64
	marginals [][]float64 // [T][L] P(y_t = s | x)
	alpha     [][]float64
	beta      [][]float64
	scale     []float64
}

// runForwardBackward computes scaled forward and backward variables over
// emission potentials and a transition matrix. Scaling keeps the recursion
// in a safe floating-point range; logZ is recovered from the scale factors.
func runForwardBackward(emissions, transitions [][]float64) forwardBackward {
	n := len(emissions)
	if n == 0 {
		return forwardBackward{}
	}
	nTags := len(emissions[0])

	expEmit := expMatrix(emissions)
	expTrans := expMatrix(transitions)

	alpha := make([][]float64, n)
	scale := make([]float64, n)

	alpha[0] = make([]float64, nTags)
	var sum float64
	for s := range alpha[0] {
		alpha[0][s] = expEmit[0][s]
		sum += alpha[0][s]
	}
	scale[0] = 1.0 / sum
	for s := range alpha[0] {
		alpha[0][s] *= scale[0]
	}

	for t := 1; t < n; t++ {
		alpha[t] = make([]float64, nTags)
		sum = 0
		for s := range alpha[t] {
			var acc float64
			for p := range alpha[t-1] {
				acc += alpha[t-1][p] * expTrans[p][s]
			}
			alpha[t][s] = acc * expEmit[t][s]
			sum += alpha[t][s]
		}
		if sum == 0 {
			scale[t] = 1.0
		} else {
			scale[t] = 1.0 / sum
		}
		for s := range alpha[t] {
			alpha[t][s] *= scale[t]
		}
	}

	beta := make([][]float64, n)
	beta[n-1] = make([]float64, nTags)
	for s := range beta[n-1] {
		beta[n-1][s] = scale[n-1]
	}
	for t := n - 2; t >= 0; t-- {
		beta[t] = make([]float64, nTags)
		for s := range beta[t] {
			var acc float64
			for nx := range beta[t+1] {
				acc += expTrans[s][nx] * expEmit[t+1][nx] * beta[t+1][nx]
			}
			beta[t][s] = acc * scale[t]
		}
	}

	logZ := 0.0
	for t := range scale {
		logZ -= math.Log(scale[t])
	}

	marginals := make([][]float64, n)
	for t := range marginals {
		marginals[t] = make([]float64, nTags)
		for s := range marginals[t] {
			marginals[t][s] = alpha[t][s] * beta[t][s] / scale[t]
		}
	}

	return forwardBackward{
		logZ:      logZ,
		marginals: marginals,
		alpha:     alpha,
		beta:      beta,
		scale:     scale,
	}
}

// transitionMarginals computes P(y_t = p, y_{t+1} = s | x) for every
// adjacent pair, a [T-1][L][L] tensor.
func transitionMarginals(fb forwardBackward, emissions, transitions [][]float64) [][][]float64 {
	n := len(emissions)
	if n <= 1 {
		return nil
	}
	nTags := len(emissions[0])
	expEmit := expMatrix(emissions)
	expTrans := expMatrix(transitions)

	result := make([][][]float64, n-1)
	for t := range result {
		result[t] = make([][]float64, nTags)
		for p := range result[t] {
			result[t][p] = make([]float64, nTags)
			for s := range result[t][p] {
				result[t][p][s] = fb.alpha[t][p] * expTrans[p][s] * expEmit[t+1][s] * fb.beta[t+1][s]
			}
		}
	}
	return result
}

func expMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = math.Exp(v)
		}
	}
	return out
}
