package contrast

const defaultCacheCapacity = 1000

// Cache memoizes contrast ratios keyed by unordered hex pair. Entries are
// evicted FIFO once the capacity is reached. Keys depend only on the hex
// values themselves, so a cache must be reset (or a fresh one supplied)
// whenever the seed or saturation driving a generation pass changes.
//
// Cache is not safe for concurrent use; each generation pass owns its own
// instance.
type Cache struct {
	capacity int
	entries  map[string]float64
	order    []string
}

// NewCache allocates a cache with the given capacity. A capacity of 0 or
// less selects the default (~1000 pairs).
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]float64, capacity),
	}
}

// Ratio returns the memoized contrast ratio for the pair, computing and
// storing it on first use. Semantics match the package-level Ratio.
func (c *Cache) Ratio(hexA, hexB string) (float64, bool) {
	if c == nil {
		return Ratio(hexA, hexB)
	}

	key := pairKey(hexA, hexB)
	if ratio, ok := c.entries[key]; ok {
		return ratio, true
	}

	ratio, ok := Ratio(hexA, hexB)
	if !ok {
		return 0, false
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = ratio
	c.order = append(c.order, key)

	return ratio, true
}

// Len reports the number of memoized pairs.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Reset drops every memoized pair while keeping the capacity.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	c.entries = make(map[string]float64, c.capacity)
	c.order = nil
}

// pairKey builds an order-independent key so Ratio(a,b) and Ratio(b,a)
// share one entry.
func pairKey(hexA, hexB string) string {
	if hexA > hexB {
		hexA, hexB = hexB, hexA
	}
	return hexA + "|" + hexB
}
