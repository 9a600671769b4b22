// Package testdb provides test database utilities for the StaffDesk API.
//
// This package creates isolated SurrealDB test environments that run real
// queries against a real database instance, ensuring tests validate actual
// database behavior including schema definitions and indexes.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	    result, err := tdb.DB.Query(ctx, "SELECT * FROM staff_application", nil)
//	}
//
// # Migrations
//
// Migrations from the migrations/ directory are automatically applied on
// setup, so each test namespace has the full schema.
//
// # Isolation
//
// Each test gets a unique namespace. When no SurrealDB instance is
// reachable, tests using the harness are skipped rather than failed.
package testdb
