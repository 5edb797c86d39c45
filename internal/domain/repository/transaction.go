package repository

import "context"

// TransactionManager runs multi-step writes atomically, such as executing a
// plan into log entries or registering an account.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewMealRepository() MealRepository
	NewExerciseRepository() ExerciseRepository
	NewActivityRepository() ActivityRepository
	NewPlanRepository() PlanRepository
}
