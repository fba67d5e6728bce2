package app

// ProduceRequest is the input for a production run.
type ProduceRequest struct {
	ProductName string
	Quantity    int64
	UserID      int
}

// StockChangeRequest is the input for Restock and SetStock. For Restock,
// Quantity is the amount added; for SetStock it is the absolute new value.
type StockChangeRequest struct {
	MaterialName string
	Quantity     int64
	UserID       int
}

// CreatePORequest is the input for creating a purchase order.
type CreatePORequest struct {
	SupplierName string
	Notes        string
	UserID       int
	Lines        []POLineInput
}

// POLineInput is a single line within a CreatePORequest.
type POLineInput struct {
	MaterialName string
	Quantity     int64
}
