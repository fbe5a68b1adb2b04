package factorized

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

// Factorized is a tensor held in factorized form.
type Factorized interface {
	// Name identifies the decomposition ("CP", "BlockTT", "Tucker").
	Name() string
	// Shape returns the flat shape: one entry per mode.
	Shape() tensor.Shape
	// TensorizedShape returns the modes.
	TensorizedShape() shape.Tensorized
	// Factors returns the factor tensors. They must not be modified.
	Factors() []*tensor.Tensor
	// ToTensor reconstructs the dense tensor.
	ToTensor() *tensor.Tensor
	// GetItem indexes the tensor, one entry per mode.
	GetItem(idx ...index.Index) (Result, error)
}

// Result is the outcome of indexing: either a smaller factorized tensor or a
// dense tensor (0-D when every mode was indexed by a point).
type Result struct {
	factorized Factorized
	dense      *tensor.Tensor
}

func factorizedResult(f Factorized) Result { return Result{factorized: f} }

func denseResult(t *tensor.Tensor) Result { return Result{dense: t} }

// Factorized returns the factorized value, if the result is one.
func (r Result) Factorized() (Factorized, bool) {
	return r.factorized, r.factorized != nil
}

// Dense returns the dense value, if the result is one.
func (r Result) Dense() (*tensor.Tensor, bool) {
	return r.dense, r.dense != nil
}

// ToTensor returns the result as a dense tensor.
func (r Result) ToTensor() *tensor.Tensor {
	if r.factorized != nil {
		return r.factorized.ToTensor()
	}
	return r.dense
}

// Shape returns the flat shape of the result.
func (r Result) Shape() tensor.Shape {
	if r.factorized != nil {
		return r.factorized.Shape()
	}
	return r.dense.Shape()
}

// IsScalar reports whether the result is a 0-D dense tensor.
func (r Result) IsScalar() bool {
	return r.dense != nil && r.dense.Ndim() == 0
}

// Scalar returns the value of a 0-D result.
func (r Result) Scalar() (float64, error) {
	if !r.IsScalar() {
		return 0, fmt.Errorf("%w: result of shape %v is not a scalar", ErrShapeMismatch, r.Shape())
	}
	return r.dense.Item(), nil
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.factorized != nil {
		return fmt.Sprintf("%s%v", r.factorized.Name(), r.factorized.TensorizedShape())
	}
	if r.dense != nil {
		return r.dense.String()
	}
	return "<empty>"
}
