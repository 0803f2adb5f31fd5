package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewTenantRepository returns a TenantRepository instance bound to the current transaction.
	NewTenantRepository() TenantRepository

	// NewApartmentRepository returns an ApartmentRepository instance bound to the current transaction.
	NewApartmentRepository() ApartmentRepository

	// NewPaymentRepository returns a PaymentRepository instance bound to the current transaction.
	NewPaymentRepository() PaymentRepository

	// NewPaymentStatusRepository returns a PaymentStatusRepository instance bound to the current transaction.
	NewPaymentStatusRepository() PaymentStatusRepository
}
