package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Setenv("HOME", t.TempDir())

	err := rootCmd.Execute()

	return out.String(), err
}

func TestMenuSet_RequiresAChange(t *testing.T) {
	_, err := runCLI(t, "menu", "set", "item-1", "--token", "t", "--server", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestMenuSet_RejectsConflictingPriceFlags(t *testing.T) {
	_, err := runCLI(t, "menu", "set", "item-1", "--price", "10", "--clear-price", "--server", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestMenuShow_PrintsEffectiveMenu(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/public/menu/o1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Menu fetched successfully",
			"data": []map[string]any{{
				"id":            "0190a6f4-0000-7000-8000-000000000001",
				"name":          "Nasi Goreng",
				"price":         "300",
				"originalPrice": "250",
				"isAvailable":   false,
			}},
		})
	}))
	defer server.Close()

	out, err := runCLI(t, "menu", "show", "o1", "--server", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Nasi Goreng")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "false")
}
