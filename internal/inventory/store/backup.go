package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// Backup serializes all three collections plus a timestamp into a
// human-inspectable snapshot.
func (s *Store) Backup(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "store.Backup")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	backup := domain.Backup{
		Products:     s.loadProducts(ctx),
		Transactions: s.loadTransactions(ctx),
		Suppliers:    s.loadSuppliers(ctx),
		BackupDate:   s.now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	span.SetAttributes(
		attribute.Int("backup.products", len(backup.Products)),
		attribute.Int("backup.transactions", len(backup.Transactions)),
		attribute.Int("backup.suppliers", len(backup.Suppliers)),
	)
	return data, nil
}

// Restore applies a snapshot. Each collection present in the snapshot fully
// overwrites the persisted one; absent collections are left untouched. A
// snapshot that fails to parse leaves everything as it was. Identifier
// counters are re-derived from the restored records so later inserts cannot
// collide with restored identifiers.
func (s *Store) Restore(ctx context.Context, data []byte) error {
	ctx, span := tracer.Start(ctx, "store.Restore")
	defer span.End()

	var backup domain.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if backup.Products != nil {
		if err := s.saveProducts(ctx, backup.Products); err != nil {
			return err
		}
		ids := make([]string, 0, len(backup.Products))
		for _, p := range backup.Products {
			ids = append(ids, p.ID)
		}
		if err := s.setSeq(ctx, productsSeqKey, maxIDSuffix(ids, "P")); err != nil {
			return err
		}
	}

	if backup.Transactions != nil {
		if err := s.saveTransactions(ctx, backup.Transactions); err != nil {
			return err
		}
		ids := make([]string, 0, len(backup.Transactions))
		for _, tx := range backup.Transactions {
			ids = append(ids, tx.ID)
		}
		if err := s.setSeq(ctx, transactionsSeqKey, maxIDSuffix(ids, "T")); err != nil {
			return err
		}
	}

	if backup.Suppliers != nil {
		if err := s.saveSuppliers(ctx, backup.Suppliers); err != nil {
			return err
		}
		ids := make([]string, 0, len(backup.Suppliers))
		for _, sup := range backup.Suppliers {
			ids = append(ids, sup.ID)
		}
		if err := s.setSeq(ctx, suppliersSeqKey, maxIDSuffix(ids, "S")); err != nil {
			return err
		}
	}

	return nil
}
