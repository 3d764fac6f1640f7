package dealscope

import (
	"context"
	"time"
)

// List represents a user-curated collection of companies. The companies
// themselves are tracked separately as an ordered membership sequence.
type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the list contains invalid fields.
func (l *List) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "list name required")
	}
	return nil
}

// ListService represents a service for managing lists and their memberships.
//
// Membership entries may reference company IDs that no longer exist in the
// directory; they are preserved in storage and filtered out when resolved
// against the company store.
type ListService interface {
	// CreateList creates a new list. The ID and creation time are
	// assigned by the service.
	CreateList(ctx context.Context, list *List) error

	// FindListByID retrieves a list by ID.
	// Returns ENOTFOUND if the list does not exist.
	FindListByID(ctx context.Context, id string) (*List, error)

	// FindLists retrieves all lists in creation order.
	FindLists(ctx context.Context) ([]*List, error)

	// DeleteList removes a list and its entire membership.
	// Returns ENOTFOUND if the list does not exist.
	DeleteList(ctx context.Context, id string) error

	// AddCompany appends a company to the list's membership. Adding a
	// company that is already a member is a no-op.
	// Returns ENOTFOUND if the list does not exist.
	AddCompany(ctx context.Context, listID, companyID string) error

	// RemoveCompany removes a company from the list's membership.
	RemoveCompany(ctx context.Context, listID, companyID string) error

	// CompanyIDs returns the list's membership in insertion order.
	// Returns ENOTFOUND if the list does not exist.
	CompanyIDs(ctx context.Context, listID string) ([]string, error)
}
