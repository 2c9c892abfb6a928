// seed_clients generates a SQL script that imports the client book from a
// CSV export of the old system. Spreadsheet exports arrive as ISO-8859-1,
// so the file is decoded before parsing.
//
// Usage: go run ./cmd/seed_clients [path/clients.csv]
// By default it looks for clients.csv in the current directory.
// Writes: internal/infrastructure/postgres/migrations/002_seed_clients.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Expected CSV header: name,email,phone,address,notes
const expectedColumns = 5

type clientRow struct {
	name    string
	email   string
	phone   string
	address string
	notes   string
}

func main() {
	csvPath := "clients.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = expectedColumns
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV has no data rows")
		os.Exit(1)
	}

	// Skip the header; drop rows without a name.
	var rows []clientRow
	for _, rec := range records[1:] {
		row := clientRow{
			name:    strings.TrimSpace(rec[0]),
			email:   strings.TrimSpace(rec[1]),
			phone:   strings.TrimSpace(rec[2]),
			address: strings.TrimSpace(rec[3]),
			notes:   strings.TrimSpace(rec[4]),
		}
		if row.name == "" {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no usable client rows found")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_clients.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Client book imported from the old system's CSV export.\n")
	out.WriteString("-- Generated by cmd/seed_clients; re-runs skip clients that already exist.\n\n")

	// The clients table has no unique key besides the id, so idempotence
	// rides on a name lookup instead of ON CONFLICT.
	for _, row := range rows {
		fmt.Fprintf(out, "INSERT INTO clients (id, name, email, phone, address, notes)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), '%s', %s, %s, %s, %s\n",
			escapeSQL(row.name),
			nullable(row.email), nullable(row.phone), nullable(row.address), nullable(row.notes))
		fmt.Fprintf(out, "WHERE NOT EXISTS (SELECT 1 FROM clients WHERE lower(name) = lower('%s'));\n", escapeSQL(row.name))
	}

	fmt.Printf("generated %s: %d clients\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// nullable renders an optional column value: NULL when blank, quoted text
// otherwise.
func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
