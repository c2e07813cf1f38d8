package algorithms

import "fmt"

// MaxFibonacci is the largest n whose table fits in an int.
const MaxFibonacci = 90

// Fibonacci traces the bottom-up table for fib(in.N).
func Fibonacci(in Input) ([]Step, error) {
	n := in.N
	if n < 0 || n > MaxFibonacci {
		return nil, fmt.Errorf("%w: fibonacci n must be in [0, %d], got %d", ErrInvalidInput, MaxFibonacci, n)
	}

	dp := make([]int, n+1)
	var r recorder
	r.add(dp, fmt.Sprintf("table for fib(%d)", n), nil, nil)

	r.add(dp, "base case fib(0) = 0", []int{0}, []int{0})
	if n >= 1 {
		dp[1] = 1
		r.add(dp, "base case fib(1) = 1", []int{1}, span(0, 1))
	}
	for i := 2; i <= n; i++ {
		dp[i] = dp[i-1] + dp[i-2]
		r.add(dp, fmt.Sprintf("fib(%d) = %d + %d = %d", i, dp[i-1], dp[i-2], dp[i]), []int{i - 2, i - 1, i}, span(0, i))
	}

	r.add(dp, fmt.Sprintf("fib(%d) = %d", n, dp[n]), nil, span(0, n))
	return r.steps, nil
}
