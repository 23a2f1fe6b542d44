package terminal

// deciseconds rounds ms to the nearest tenth of a second, the granularity
// of the terminal read timer. The result is kept within [1, 255]: zero
// would make every read return at once.
func deciseconds(ms int) uint8 {
	d := (ms + 50) / 100
	return uint8(min(max(d, 1), 255))
}
