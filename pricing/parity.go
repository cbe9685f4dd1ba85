package pricing

import "math"

// ParityTolerance is the absolute error ParityCheck accepts on each side.
const ParityTolerance = 1e-4

// CallToPut uses put-call parity to turn a call price into a put price.
func CallToPut(c, T, K, r, U float64) float64 {
	return c + K*discount(T, r) - U
}

// PutToCall uses put-call parity to turn a put price into a call price.
func PutToCall(p, T, K, r, U float64) float64 {
	return p + U - K*discount(T, r)
}

// ParityCheck reports whether a call/put price pair satisfies put-call parity.
func ParityCheck(C, P, T, K, r, U float64) bool {
	return math.Abs(C-PutToCall(P, T, K, r, U)) < ParityTolerance &&
		math.Abs(P-CallToPut(C, T, K, r, U)) < ParityTolerance
}
