package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity_Print(t *testing.T) {
	out := mustRun(t, "new-entity", "com.example.model.Customer", "name", "age:int", "--table", "customers")

	assert.Contains(t, out, "package com.example.model;\n")
	assert.Contains(t, out, "@Entity @Table(name = \"customers\")\npublic class Customer implements Serializable {")
	assert.Contains(t, out, "    @Id @GeneratedValue(strategy = GenerationType.AUTO)\n    private Long id;")
	assert.Contains(t, out, "    @Column(name = \"age\")\n    private int age;")
	assert.Contains(t, out, "    public void setName(String name) {")
}

func TestNewEntity_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "com", "example", "Order.java")

	res := run(t, "-w", "new-entity", "-d", dir, "com.example.Order", "total:long", "--strategy", "SEQUENCE")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GenerationType.SEQUENCE")

	// the generated file is immediately editable
	assert.Equal(t, "field Order.total\n    @Column(name = \"total\") [normal]\n",
		mustRun(t, "list", path, "Order.total"))

	res = run(t, "-w", "new-entity", "-d", dir, "com.example.Order")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "already exists")
	assert.Contains(t, res.stderr, "--force")

	res = run(t, "-w", "new-entity", "-d", dir, "--force", "com.example.Order")
	assert.Equal(t, 0, res.code, res.stderr)
}

func TestNewEntity_Errors(t *testing.T) {
	res := run(t, "new-entity", "com.example.Order", "--strategy", "RANDOM")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not found")
	assert.Contains(t, res.stderr, "AUTO")

	res = run(t, "new-entity", "com.example.Order", "bad-name:int")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid name")

	res = run(t, "new-entity")
	assert.Equal(t, 1, res.code)
}
