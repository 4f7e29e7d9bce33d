// Package store persists the demo café's menu and orders in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/conch-tools/conch/internal/log"
	"github.com/conch-tools/conch/internal/store/migrations"
)

// MenuItem is one orderable item.
type MenuItem struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	PriceCents int    `json:"price_cents"`
}

// Order is one placed order.
type Order struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrNoSuchItem reports an order against an item that is not on the menu.
var ErrNoSuchItem = errors.New("no such menu item")

// Store wraps the database connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs pending
// migrations.
func Open(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// New wraps an existing connection. The caller owns migrations.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// MenuItems returns the menu in name order.
func (s *Store) MenuItems() ([]MenuItem, error) {
	rows, err := s.db.Query("SELECT name, kind, price_cents FROM menu_items ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.Name, &it.Kind, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindItem returns the named item or ErrNoSuchItem.
func (s *Store) FindItem(name string) (MenuItem, error) {
	var it MenuItem
	err := s.db.QueryRow(
		"SELECT name, kind, price_cents FROM menu_items WHERE name = ?", name,
	).Scan(&it.Name, &it.Kind, &it.PriceCents)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItem{}, ErrNoSuchItem
	}
	if err != nil {
		return MenuItem{}, fmt.Errorf("find item %s: %w", name, err)
	}
	return it, nil
}

// AddItem inserts or replaces a menu item.
func (s *Store) AddItem(item MenuItem) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO menu_items (name, kind, price_cents) VALUES (?, ?, ?)",
		item.Name, item.Kind, item.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("add item %s: %w", item.Name, err)
	}
	return nil
}

// PlaceOrder records an order for the named item.
func (s *Store) PlaceOrder(item string) (Order, error) {
	if _, err := s.FindItem(item); err != nil {
		return Order{}, err
	}

	o := Order{
		ID:        uuid.NewString(),
		Item:      item,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO orders (id, item, created_at) VALUES (?, ?, ?)",
		o.ID, o.Item, o.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Order{}, fmt.Errorf("place order for %s: %w", item, err)
	}

	log.Info("store: order %s placed for %s", o.ID, o.Item)
	return o, nil
}

// Orders returns all orders, newest first.
func (s *Store) Orders() ([]Order, error) {
	rows, err := s.db.Query("SELECT id, item, created_at FROM orders ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []Order
	for rows.Next() {
		var o Order
		var created string
		if err := rows.Scan(&o.ID, &o.Item, &created); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			o.CreatedAt = t
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ClearOrders deletes all orders and returns how many were removed.
func (s *Store) ClearOrders() (int64, error) {
	res, err := s.db.Exec("DELETE FROM orders")
	if err != nil {
		return 0, fmt.Errorf("clear orders: %w", err)
	}
	n, _ := res.RowsAffected()
	log.Info("store: cleared %d orders", n)
	return n, nil
}

// defaultMenu seeds a first run.
var defaultMenu = []MenuItem{
	{Name: "espresso", Kind: "coffee", PriceCents: 250},
	{Name: "latte", Kind: "coffee", PriceCents: 400},
	{Name: "mocha", Kind: "coffee", PriceCents: 450},
	{Name: "cake", Kind: "pastry", PriceCents: 350},
	{Name: "pies", Kind: "pastry", PriceCents: 300},
}

// SeedDefaultMenu inserts the default menu when the table is empty.
func (s *Store) SeedDefaultMenu() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return fmt.Errorf("count menu: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, it := range defaultMenu {
		if err := s.AddItem(it); err != nil {
			return err
		}
	}
	return nil
}
