package tensor

import "math/rand/v2"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros(shape Shape, b Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14, backend)
func Full(shape Shape, value float64, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding value.
func Scalar(value float64, b Backend) *Tensor {
	return Full(Shape{}, value, b)
}

// Randn creates a tensor with values drawn from a normal distribution with
// mean 0 and the given standard deviation.
// Note: Uses math/rand (not crypto/rand) - appropriate for numerical purposes.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	t := tensor.Randn(Shape{100, 100}, rng, 0.02, backend)
func Randn(shape Shape, rng *rand.Rand, std float64, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = rng.NormFloat64() * std
	}
	return t
}

// Arange creates a tensor of the given shape holding 0, 1, 2, ... in
// row-major order. Useful for tests where every element must be distinct.
func Arange(shape Shape, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = float64(i)
	}
	return t
}
