package input

// Latch emulates held keys for devices that only report presses, such as
// terminals. A key counts as held until window ticks pass without a repeat
// press; key auto-repeat keeps it held while the key is down.
type Latch struct {
	window   int
	lastSeen map[string]int
}

// NewLatch creates a latch that releases keys after window silent ticks
func NewLatch(window int) *Latch {
	if window < 1 {
		window = 1
	}
	return &Latch{window: window, lastSeen: make(map[string]int)}
}

// Press records a press of the named key at tick
func (l *Latch) Press(name string, tick int) {
	l.lastSeen[name] = tick
}

// Release drops the key immediately
func (l *Latch) Release(name string) {
	delete(l.lastSeen, name)
}

// Keys returns the keys still held at tick, forgetting expired ones
func (l *Latch) Keys(tick int) Keys {
	keys := make(Keys, len(l.lastSeen))
	for name, seen := range l.lastSeen {
		if tick-seen >= l.window {
			delete(l.lastSeen, name)
			continue
		}
		keys[name] = true
	}
	return keys
}
