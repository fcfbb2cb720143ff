// Package apitest provides an in-memory backend that speaks the cleaning
// report REST contract, for exercising the API client end to end.
package apitest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
)

type record = map[string]any

type collection struct {
	records []record // newest first
	nextID  int64
	// stringIDs marks collections whose ids are chosen by the client payload.
	stringIDs bool
}

func (c *collection) find(id string) int {
	for i, r := range c.records {
		if fmt.Sprint(r["id"]) == id {
			return i
		}
	}
	return -1
}

func (c *collection) insert(r record) record {
	if c.stringIDs {
		if _, ok := r["id"].(string); !ok {
			c.nextID++
			r["id"] = "acct-" + strconv.FormatInt(c.nextID, 10)
		}
	} else {
		c.nextID++
		r["id"] = c.nextID
	}
	c.records = append([]record{r}, c.records...)
	return r
}

// Backend is a fake backend. The zero value is not usable; call NewBackend.
type Backend struct {
	mu          sync.Mutex
	collections map[string]*collection
	requests    []string
	syncBodies  [][]byte
	failures    map[string]int

	Server *httptest.Server
}

// NewBackend starts a server; it is closed when the test ends.
func NewBackend(t interface{ Cleanup(func()) }) *Backend {
	b := &Backend{
		collections: map[string]*collection{
			"reports":       {},
			"invoices":      {},
			"bank-accounts": {stringIDs: true},
			"presets":       {},
		},
		failures: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{collection}", b.handleList)
	mux.HandleFunc("POST /api/{collection}", b.handleCreate)
	mux.HandleFunc("PUT /api/{collection}/{id}", b.handleUpdate)
	mux.HandleFunc("DELETE /api/{collection}/{id}", b.handleDelete)
	mux.HandleFunc("POST /api/sync", b.handleSync)

	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)
		status, fail := b.failures[r.Method+" "+r.URL.Path]
		b.mu.Unlock()
		if fail {
			writeError(w, status, "injected failure")
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the origin to hand to api.NewClient.
func (b *Backend) URL() string { return b.Server.URL }

// Fail makes every request matching "METHOD /api/path" answer with status.
func (b *Backend) Fail(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

// Requests returns "METHOD /path" for every request received so far.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

// SyncBodies returns the raw bodies posted to /api/sync.
func (b *Backend) SyncBodies() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.syncBodies...)
}

func (b *Backend) lookup(w http.ResponseWriter, r *http.Request) *collection {
	c, ok := b.collections[r.PathValue("collection")]
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return nil
	}
	return c
}

func (b *Backend) handleList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.lookup(w, r)
	if c == nil {
		return
	}
	writeJSON(w, http.StatusOK, snapshot(c))
}

func (b *Backend) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.lookup(w, r)
	if c == nil {
		return
	}
	writeJSON(w, http.StatusCreated, c.insert(body))
}

func (b *Backend) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var body record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.lookup(w, r)
	if c == nil {
		return
	}
	i := c.find(r.PathValue("id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	body["id"] = c.records[i]["id"]
	c.records[i] = body
	writeJSON(w, http.StatusOK, body)
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.lookup(w, r)
	if c == nil {
		return
	}
	i := c.find(r.PathValue("id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted successfully"})
}

func (b *Backend) handleSync(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reports      []record `json:"reports"`
		Invoices     []record `json:"invoices"`
		BankAccounts []record `json:"bankAccounts"`
		Presets      []record `json:"presets"`
	}
	raw, err := io.ReadAll(r.Body)
	if err == nil {
		err = json.Unmarshal(raw, &body)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.syncBodies = append(b.syncBodies, raw)

	for name, recs := range map[string][]record{
		"reports":       body.Reports,
		"invoices":      body.Invoices,
		"bank-accounts": body.BankAccounts,
		"presets":       body.Presets,
	} {
		col := b.collections[name]
		for _, rec := range recs {
			if id, ok := rec["id"]; ok {
				if i := col.find(fmt.Sprint(id)); i >= 0 {
					col.records[i] = rec
					continue
				}
			}
			col.insert(rec)
		}
	}

	writeJSON(w, http.StatusOK, map[string][]record{
		"reports":      snapshot(b.collections["reports"]),
		"invoices":     snapshot(b.collections["invoices"]),
		"bankAccounts": snapshot(b.collections["bank-accounts"]),
		"presets":      snapshot(b.collections["presets"]),
	})
}

func snapshot(col *collection) []record {
	return append([]record{}, col.records...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
