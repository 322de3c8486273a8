package inventory

// BranchRef referencia a la sucursal de una entrada nueva: una existente o una a crear en la misma transacción.
type BranchRef interface {
	isBranchRef()
}

// ExistingBranch referencia una sucursal ya registrada.
type ExistingBranch struct {
	ID string
}

// NewBranch datos de una sucursal que se crea junto con la entrada.
type NewBranch struct {
	Name     string
	Location string
	Phone    string
}

func (ExistingBranch) isBranchRef() {}
func (NewBranch) isBranchRef()      {}
