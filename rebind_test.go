package pdowrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vertilia/pdo-wrap"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT 1",
			want:  "SELECT 1",
		},
		{
			name:  "numbered in order",
			query: "SELECT name FROM users WHERE id = ? AND age > ?",
			want:  "SELECT name FROM users WHERE id = $1 AND age > $2",
		},
		{
			name:  "multi row insert",
			query: "INSERT INTO users (id, name) VALUES (?, ?), (?, ?)",
			want:  "INSERT INTO users (id, name) VALUES ($1, $2), ($3, $4)",
		},
		{
			name:  "question mark in literal",
			query: "SELECT 'any?' FROM users WHERE name = ?",
			want:  "SELECT 'any?' FROM users WHERE name = $1",
		},
		{
			name:  "question mark in quoted identifier",
			query: `SELECT "what?" FROM users WHERE name = ?`,
			want:  `SELECT "what?" FROM users WHERE name = $1`,
		},
		{
			name:  "question mark in comments",
			query: "SELECT 1 -- really?\nFROM users /* sure? */ WHERE name = ?",
			want:  "SELECT 1 -- really?\nFROM users /* sure? */ WHERE name = $1",
		},
		{
			name:  "named placeholders untouched",
			query: "SELECT name FROM users WHERE id = :id",
			want:  "SELECT name FROM users WHERE id = :id",
		},
		{
			name:  "ten and more",
			query: "SELECT ?,?,?,?,?,?,?,?,?,?,?",
			want:  "SELECT $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdowrap.Rebind(pdowrap.BindDollar, tt.query))
		})
	}
}

func TestRebindQuestion(t *testing.T) {
	query := "SELECT name FROM users WHERE id = ?"
	assert.Equal(t, query, pdowrap.Rebind(pdowrap.BindQuestion, query))
}

func TestBindvarForDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   pdowrap.Bindvar
	}{
		{"pgx", pdowrap.BindDollar},
		{"pgx/v5", pdowrap.BindDollar},
		{"postgres", pdowrap.BindDollar},
		{"pq", pdowrap.BindDollar},
		{"mysql", pdowrap.BindQuestion},
		{"sqlite3", pdowrap.BindQuestion},
		{"sqlite", pdowrap.BindQuestion},
		{"", pdowrap.BindQuestion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pdowrap.BindvarForDriver(tt.driver), tt.driver)
	}
}
