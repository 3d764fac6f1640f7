package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/dealscope"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dealscope.ListService = (*ListService)(nil)

// ListService implements dealscope.ListService using SQLite.
type ListService struct {
	db *DB
}

// NewListService creates a new ListService.
func NewListService(db *DB) *ListService {
	return &ListService{db: db}
}

// CreateList creates a new list.
func (s *ListService) CreateList(ctx context.Context, list *dealscope.List) error {
	if err := list.Validate(); err != nil {
		return err
	}

	list.ID = uuid.New().String()
	list.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lists (id, name, created_at)
		VALUES (?, ?, ?)
	`, list.ID, list.Name, list.CreatedAt.Format(time.RFC3339))

	return err
}

// FindListByID retrieves a list by ID.
func (s *ListService) FindListByID(ctx context.Context, id string) (*dealscope.List, error) {
	var list dealscope.List
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM lists
		WHERE id = ?
	`, id).Scan(&list.ID, &list.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, dealscope.Errorf(dealscope.ENOTFOUND, "list not found")
	}
	if err != nil {
		return nil, err
	}

	if list.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &list, nil
}

// FindLists retrieves all lists in creation order.
func (s *ListService) FindLists(ctx context.Context) ([]*dealscope.List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM lists
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*dealscope.List
	for rows.Next() {
		var list dealscope.List
		var createdAt string

		if err := rows.Scan(&list.ID, &list.Name, &createdAt); err != nil {
			return nil, err
		}
		if list.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		lists = append(lists, &list)
	}

	return lists, rows.Err()
}

// DeleteList removes a list. Membership rows cascade via the schema's
// foreign key.
func (s *ListService) DeleteList(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dealscope.Errorf(dealscope.ENOTFOUND, "list not found")
	}
	return nil
}

// AddCompany appends a company to the list's membership. Re-adding an
// existing member is a no-op: the insert is ignored on conflict, so the
// original position is kept.
func (s *ListService) AddCompany(ctx context.Context, listID, companyID string) error {
	if companyID == "" {
		return dealscope.Errorf(dealscope.EINVALID, "company ID required")
	}
	if _, err := s.FindListByID(ctx, listID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO list_companies (list_id, company_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM list_companies WHERE list_id = ?))
		ON CONFLICT (list_id, company_id) DO NOTHING
	`, listID, companyID, listID)

	return err
}

// RemoveCompany removes a company from the list's membership.
func (s *ListService) RemoveCompany(ctx context.Context, listID, companyID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM list_companies
		WHERE list_id = ? AND company_id = ?
	`, listID, companyID)
	return err
}

// CompanyIDs returns the list's membership in insertion order.
func (s *ListService) CompanyIDs(ctx context.Context, listID string) ([]string, error) {
	if _, err := s.FindListByID(ctx, listID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT company_id
		FROM list_companies
		WHERE list_id = ?
		ORDER BY position
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
