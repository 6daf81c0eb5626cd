package motion

import "math"

func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Keyframes are values spaced evenly over a normalised time 0..1. Each
// segment is eased in and out.
type Keyframes []float64

// At samples the keyframes at t. Empty keyframes sample as 1.
func (k Keyframes) At(t float64) float64 {
	switch len(k) {
	case 0:
		return 1
	case 1:
		return k[0]
	}
	t = clamp(t, 0, 1)
	if t == 1 {
		return k[len(k)-1]
	}
	segments := float64(len(k) - 1)
	i := int(t * segments)
	local := t*segments - float64(i)
	return k[i] + (k[i+1]-k[i])*easeInOut(local)
}

func (k Keyframes) First() float64 { return k.At(0) }
func (k Keyframes) Last() float64  { return k.At(1) }
