// Package store implements the inventory store: the single authority over
// the product, transaction and supplier collections. Each collection is
// persisted as one JSON blob under a stable key in a kv.Store; a missing or
// undecodable blob reads back as an empty collection.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/pkg/kv"
)

const (
	productsKey     = "inventory_products"
	transactionsKey = "inventory_transactions"
	suppliersKey    = "inventory_suppliers"

	productsSeqKey     = "inventory_products_seq"
	transactionsSeqKey = "inventory_transactions_seq"
	suppliersSeqKey    = "inventory_suppliers_seq"
)

var tracer = otel.Tracer("inventory-store")

// Store owns the three inventory collections. All operations serialize on
// an internal mutex: there is exactly one writer and writes are atomic from
// the caller's perspective.
type Store struct {
	mu        sync.Mutex
	kv        kv.Store
	now       func() time.Time
	lastSaved time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open wires the store to its backend and runs the first-open bootstrap:
// any collection that reads back empty is seeded with the sample fixtures.
func Open(ctx context.Context, backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  backend,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap store: %w", err)
	}
	return s, nil
}

func (s *Store) bootstrap(ctx context.Context) error {
	if len(s.loadProducts(ctx)) == 0 {
		if err := s.saveProducts(ctx, SampleProducts()); err != nil {
			return err
		}
		if err := s.setSeq(ctx, productsSeqKey, len(SampleProducts())); err != nil {
			return err
		}
	}
	if len(s.loadTransactions(ctx)) == 0 {
		if err := s.saveTransactions(ctx, SampleTransactions()); err != nil {
			return err
		}
		if err := s.setSeq(ctx, transactionsSeqKey, len(SampleTransactions())); err != nil {
			return err
		}
	}
	if len(s.loadSuppliers(ctx)) == 0 {
		if err := s.saveSuppliers(ctx, SampleSuppliers()); err != nil {
			return err
		}
		if err := s.setSeq(ctx, suppliersSeqKey, len(SampleSuppliers())); err != nil {
			return err
		}
	}
	return nil
}

// dateStamp returns the current date in the persisted YYYY-MM-DD format.
func (s *Store) dateStamp() string {
	return s.now().Format(domain.DateLayout)
}

// LastSavedAt reports when the store last persisted anything. The zero time
// means nothing has been written in this process yet.
func (s *Store) LastSavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// loadCollection decodes a persisted collection. A missing key or a blob
// that fails to decode both read back as the empty collection.
func loadCollection[T any](ctx context.Context, backend kv.Store, key string) []T {
	data, err := backend.Get(ctx, key)
	if err != nil {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		return []T{}
	}
	return records
}

func (s *Store) loadProducts(ctx context.Context) []domain.Product {
	return loadCollection[domain.Product](ctx, s.kv, productsKey)
}

func (s *Store) loadTransactions(ctx context.Context) []domain.Transaction {
	return loadCollection[domain.Transaction](ctx, s.kv, transactionsKey)
}

func (s *Store) loadSuppliers(ctx context.Context) []domain.Supplier {
	return loadCollection[domain.Supplier](ctx, s.kv, suppliersKey)
}

func (s *Store) saveCollection(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return err
	}
	s.lastSaved = s.now()
	return nil
}

func (s *Store) saveProducts(ctx context.Context, products []domain.Product) error {
	return s.saveCollection(ctx, productsKey, products)
}

func (s *Store) saveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return s.saveCollection(ctx, transactionsKey, transactions)
}

func (s *Store) saveSuppliers(ctx context.Context, suppliers []domain.Supplier) error {
	return s.saveCollection(ctx, suppliersKey, suppliers)
}

// Identifiers come from persisted monotonic counters, one per collection,
// so delete/add cycles can never hand out the same identifier twice.

func (s *Store) setSeq(ctx context.Context, key string, value int) error {
	return s.kv.Set(ctx, key, []byte(strconv.Itoa(value)))
}

func (s *Store) nextID(ctx context.Context, seqKey, prefix string) (string, error) {
	seq := 0
	if data, err := s.kv.Get(ctx, seqKey); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			seq = parsed
		}
	}
	seq++
	if err := s.setSeq(ctx, seqKey, seq); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// maxIDSuffix returns the largest numeric suffix among identifiers carrying
// the prefix. Restore uses it to re-derive the counters.
func maxIDSuffix(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

// Products returns the full product collection.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadProducts(ctx), nil
}

// Product looks a product up by identifier.
func (s *Store) Product(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadProducts(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// AddProduct assigns the next product identifier, stamps lastUpdated and
// persists the grown collection.
func (s *Store) AddProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "store.AddProduct",
		trace.WithAttributes(attribute.String("product.sku", product.SKU)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(ctx, productsSeqKey, "P")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	product.ID = id
	product.LastUpdated = s.dateStamp()

	products := append(s.loadProducts(ctx), product)
	if err := s.saveProducts(ctx, products); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return &product, nil
}

// UpdateProduct merges the patch into the matching record and restamps
// lastUpdated. It reports whether a matching record was found.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (bool, error) {
	ctx, span := tracer.Start(ctx, "store.UpdateProduct",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateProductLocked(ctx, id, patch)
}

func (s *Store) updateProductLocked(ctx context.Context, id string, patch domain.ProductPatch) (bool, error) {
	products := s.loadProducts(ctx)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		patch.Apply(&products[i])
		products[i].LastUpdated = s.dateStamp()
		if err := s.saveProducts(ctx, products); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// DeleteProduct removes the record and persists the remaining collection
// unconditionally; deleting an absent identifier is not an error.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "store.DeleteProduct",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.loadProducts(ctx)
	remaining := products[:0]
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if err := s.saveProducts(ctx, remaining); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Transactions returns the collection newest-first.
func (s *Store) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTransactions(ctx), nil
}

// AddTransaction assigns the next transaction identifier, stamps the date
// and prepends the record so the collection stays newest-first. The caller
// supplies the acting user; the store never invents one.
func (s *Store) AddTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "store.AddTransaction",
		trace.WithAttributes(
			attribute.String("transaction.product_id", tx.ProductID),
			attribute.String("transaction.type", string(tx.Type)),
			attribute.Int("transaction.quantity", tx.Quantity),
		),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(ctx, transactionsSeqKey, "T")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	tx.ID = id
	tx.Date = s.dateStamp()

	transactions := append([]domain.Transaction{tx}, s.loadTransactions(ctx)...)
	if err := s.saveTransactions(ctx, transactions); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("transaction.id", tx.ID))
	return &tx, nil
}

// AdjustStock applies a movement to the product's stock: IN adds, OUT
// subtracts. There is deliberately no floor check here; validating that an
// OUT movement does not exceed current stock is the caller's precondition.
// Adjusting a missing product is a no-op.
func (s *Store) AdjustStock(ctx context.Context, productID string, quantity int, movement domain.MovementType) error {
	ctx, span := tracer.Start(ctx, "store.AdjustStock",
		trace.WithAttributes(
			attribute.String("product.id", productID),
			attribute.String("movement.type", string(movement)),
			attribute.Int("movement.quantity", quantity),
		),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var current *domain.Product
	for _, p := range s.loadProducts(ctx) {
		if p.ID == productID {
			current = &p
			break
		}
	}
	if current == nil {
		return nil
	}

	stock := current.Stock
	switch movement {
	case domain.MovementIn:
		stock += quantity
	case domain.MovementOut:
		stock -= quantity
	}

	// Route through the update path so lastUpdated is restamped.
	_, err := s.updateProductLocked(ctx, productID, domain.ProductPatch{Stock: &stock})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Suppliers returns the full supplier collection.
func (s *Store) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSuppliers(ctx), nil
}

// AddSupplier assigns the next supplier identifier and persists the grown
// collection.
func (s *Store) AddSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(ctx, suppliersSeqKey, "S")
	if err != nil {
		return nil, err
	}
	supplier.ID = id

	suppliers := append(s.loadSuppliers(ctx), supplier)
	if err := s.saveSuppliers(ctx, suppliers); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// SaveSuppliers overwrites the whole supplier collection.
func (s *Store) SaveSuppliers(ctx context.Context, suppliers []domain.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveSuppliers(ctx, suppliers)
}

// LowStock returns the products at or below their reorder threshold.
func (s *Store) LowStock(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	low := []domain.Product{}
	for _, p := range s.loadProducts(ctx) {
		if p.Stock <= p.MinStock {
			low = append(low, p)
		}
	}
	return low, nil
}

// Stats computes the dashboard aggregate. Monthly transactions are the ones
// dated within the trailing calendar month.
func (s *Store) Stats(ctx context.Context) (*domain.InventoryStats, error) {
	ctx, span := tracer.Start(ctx, "store.Stats")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.loadProducts(ctx)
	transactions := s.loadTransactions(ctx)

	totalValue := 0.0
	lowStock := 0
	outOfStock := 0
	for _, p := range products {
		totalValue += p.Value()
		if p.Stock <= p.MinStock {
			lowStock++
		}
		if p.Stock == 0 {
			outOfStock++
		}
	}

	monthAgo := s.now().AddDate(0, -1, 0)
	monthly := 0
	for _, tx := range transactions {
		date, err := time.Parse(domain.DateLayout, tx.Date)
		if err != nil {
			continue
		}
		if !date.Before(monthAgo) {
			monthly++
		}
	}

	stats := &domain.InventoryStats{
		TotalProducts:       len(products),
		TotalValue:          fmt.Sprintf("%.2f", totalValue),
		LowStockCount:       lowStock,
		OutOfStockCount:     outOfStock,
		MonthlyTransactions: monthly,
	}

	span.SetAttributes(
		attribute.Int("stats.total_products", stats.TotalProducts),
		attribute.Int("stats.low_stock", stats.LowStockCount),
	)
	return stats, nil
}
