package repository

// Repositories agrupa los puertos atados a una misma conexión o transacción.
type Repositories struct {
	Entries   EntryRepository
	Stock     StockRepository
	Products  ProductRepository
	Branches  BranchRepository
	Suppliers SupplierRepository
}
