package catch

// Resolve removes every object overlapping the collector and returns how
// many were caught. Removed objects cannot be counted again.
func Resolve(c Collector, pool *ObjectPool) int {
	box := c.Rect()
	return pool.removeWhere(func(o FallingObject) bool {
		return o.Rect().Intersects(box)
	})
}
