package core

// SampleDiscrete picks an index from weights with probability proportional to its weight.
// If uRemapped is not nil it receives u rescaled to [0,1) within the chosen bucket, so the
// same sample value can be reused for a subsequent decision. Returns -1 if all weights are zero.
func SampleDiscrete(weights []float64, u float64, uRemapped *float64) int {
	idx, _ := SampleDiscretePMF(weights, u, uRemapped)
	return idx
}

// SampleDiscretePMF is SampleDiscrete that also returns the probability of the chosen index
func SampleDiscretePMF(weights []float64, u float64, uRemapped *float64) (int, float64) {
	if len(weights) == 0 {
		return -1, 0
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return -1, 0
	}

	up := u * sum
	if up == sum {
		up = NextFloatDown(up)
	}

	offset := 0
	accumulated := 0.0
	for offset < len(weights) && (weights[offset] == 0 || accumulated+weights[offset] <= up) {
		accumulated += weights[offset]
		offset++
	}

	if offset == len(weights) {
		// Only reachable when the weights are negative or not finite
		Assertf(false, "discrete sampling exhausted: u=%v sum=%v", u, sum)
		offset = lastPositive(weights)
		if offset < 0 {
			return -1, 0
		}
		accumulated = sum - weights[offset]
	}

	w := weights[offset]
	if uRemapped != nil {
		*uRemapped = min((up-accumulated)/w, OneMinusEpsilon)
	}
	return offset, w / sum
}

func lastPositive(weights []float64) int {
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
