package rating

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// RateTable é um snapshot imutável das taxas de um país indexadas por data
type RateTable struct {
	country  string
	entries  map[string]domain.RateEntry
	loadedAt time.Time
}

func NewRateTable(country string, entries []domain.RateEntry, loadedAt time.Time) *RateTable {
	table := &RateTable{
		country:  country,
		entries:  make(map[string]domain.RateEntry, len(entries)),
		loadedAt: loadedAt,
	}
	for _, entry := range entries {
		entry.Country = country
		table.entries[domain.DateKey(entry.Date)] = entry
	}
	return table
}

// Lookup exige as duas taxas para a data exata; não há busca pela data anterior mais próxima
func (t *RateTable) Lookup(date time.Time) (domain.RateEntry, error) {
	entry, ok := t.entries[domain.DateKey(date)]
	if !ok {
		return domain.RateEntry{}, &RateNotFoundError{
			Date:    date,
			Country: t.country,
			Missing: []string{MissingFeedRate, MissingCentralBankRate},
		}
	}

	var missing []string
	if !entry.FeedRate.IsPositive() {
		missing = append(missing, MissingFeedRate)
	}
	if !entry.CentralBankRate.IsPositive() {
		missing = append(missing, MissingCentralBankRate)
	}
	if len(missing) > 0 {
		return domain.RateEntry{}, &RateNotFoundError{Date: date, Country: t.country, Missing: missing}
	}

	return entry, nil
}

func (t *RateTable) Country() string {
	return t.country
}

func (t *RateTable) Len() int {
	return len(t.entries)
}

func (t *RateTable) LoadedAt() time.Time {
	return t.loadedAt
}

// Latest retorna a entrada mais recente, útil para diagnóstico
func (t *RateTable) Latest() (domain.RateEntry, bool) {
	if len(t.entries) == 0 {
		return domain.RateEntry{}, false
	}
	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return t.entries[keys[len(keys)-1]], true
}

// Cache guarda um snapshot por país. Leitores nunca bloqueiam; escritores
// constroem um novo mapa completo e o publicam de uma vez.
type Cache struct {
	mu     sync.Mutex
	tables atomic.Pointer[map[string]*RateTable]
}

func NewCache() *Cache {
	c := &Cache{}
	empty := map[string]*RateTable{}
	c.tables.Store(&empty)
	return c
}

func (c *Cache) Get(country string) *RateTable {
	tables := c.tables.Load()
	if tables == nil {
		return nil
	}
	return (*tables)[country]
}

func (c *Cache) Put(table *RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := *c.tables.Load()
	next := make(map[string]*RateTable, len(current)+1)
	for country, t := range current {
		next[country] = t
	}
	next[table.country] = table
	c.tables.Store(&next)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	empty := map[string]*RateTable{}
	c.tables.Store(&empty)
}

// Countries lista os países com snapshot carregado
func (c *Cache) Countries() []string {
	tables := *c.tables.Load()
	countries := make([]string, 0, len(tables))
	for country := range tables {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}
