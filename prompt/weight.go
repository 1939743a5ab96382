package prompt

import "math"

// weightMultiplier is NovelAI's emphasis step: each brace level multiplies
// the effective weight by it, each bracket level divides.
const weightMultiplier = 1.05

func weightAt(braceDepth, bracketDepth int, scalar float64, scoped bool) float64 {
	w := 1.0

	if braceDepth > 0 {
		w *= math.Pow(weightMultiplier, float64(braceDepth))
	}
	if bracketDepth > 0 {
		w /= math.Pow(weightMultiplier, float64(bracketDepth))
	}
	if scoped {
		w *= scalar
	}

	return w
}
