package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations and panic on
// malformed arguments; callers validate user input before reaching them.
//
// Implementations:
//   - CPU: Pure Go with gonum BLAS for pairwise contractions
type Backend interface {
	// Element-wise operations (shapes must match)
	Mul(a, b *RawTensor) *RawTensor

	// Reduction operations
	Sum(x *RawTensor) *RawTensor // total sum (0-D result)

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor // remove dimension of size 1

	// Indexing operations
	Gather(x *RawTensor, sel []Selection) *RawTensor // one selection per axis

	// Contraction operations
	Tensordot(a, b *RawTensor, axes int) *RawTensor       // last axes of a with first axes of b
	Einsum(eq Equation, operands ...*RawTensor) *RawTensor // n-ary labelled contraction

	// Metadata
	Name() string
}
