// Package book provides the catalog aggregate and the stock ledger rules
// of the bookstore.
//
// The package includes:
//   - Book: The aggregate root holding catalog details and the stock count
//   - Category: A value object restricting books to the known catalog categories
//
// Key business rules:
//   - Stock quantity never goes negative; RemoveStock fails with
//     InsufficientStockError (naming the book) rather than oversell
//   - AddStock has no upper bound; it restores units returned by
//     cancelled orders
//   - The catalog price is a live value; orders snapshot it per item
//     at order time
package book
