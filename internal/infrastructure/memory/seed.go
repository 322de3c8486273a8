package memory

import (
	"time"

	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
)

// Ids fijos del catálogo de demostración (STORAGE_DRIVER=memory).
const (
	DemoProductUreaID   = "8f1c2a4e-0b7d-4c61-9a36-1d2e3f405a01"
	DemoProductDAPID    = "8f1c2a4e-0b7d-4c61-9a36-1d2e3f405a02"
	DemoProductNPKID    = "8f1c2a4e-0b7d-4c61-9a36-1d2e3f405a03"
	DemoBranchCentralID = "5b0e7d12-6c3a-4f8e-b1a9-7e6d5c4b3a01"
	DemoSupplierID      = "c3d4e5f6-a7b8-4c9d-8e0f-1a2b3c4d5e01"
)

// NewDemo crea un store con un catálogo mínimo para desarrollo local sin base de datos.
func NewDemo() *Store {
	now := time.Now().UTC()
	s := New()
	s.AddProduct(entity.Product{ID: DemoProductUreaID, Code: "URE-46", Name: "Urea 46%", Unit: "saco 50kg", CreatedAt: now, UpdatedAt: now})
	s.AddProduct(entity.Product{ID: DemoProductDAPID, Code: "DAP-18", Name: "Fosfato diamónico 18-46-0", Unit: "saco 50kg", CreatedAt: now, UpdatedAt: now})
	s.AddProduct(entity.Product{ID: DemoProductNPKID, Code: "NPK-15", Name: "NPK 15-15-15", CreatedAt: now, UpdatedAt: now})
	s.AddBranch(entity.Branch{ID: DemoBranchCentralID, Name: "Bodega central", Location: "Km 3 vía principal", CreatedAt: now, UpdatedAt: now})
	s.AddSupplier(entity.Supplier{ID: DemoSupplierID, Name: "Agroinsumos del Valle", Phone: "+57 300 000 0000", CreatedAt: now, UpdatedAt: now})
	return s
}
